package middleware

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/hexrune/pkg/ports"
)

// envelopeMagic prefixes every encrypted script so plain assets are
// recognized instead of failing authentication.
var envelopeMagic = []byte("HXE1")

// ErrNotEncrypted is returned when a stored asset lacks the encryption envelope.
var ErrNotEncrypted = errors.New("script is not encrypted")

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new data.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys is a list of old keys to try when decryption fails.
	// This enables zero-downtime key rotation.
	FallbackKeys [][]byte

	// AllowPlaintext loads assets saved before encryption was enabled.
	AllowPlaintext bool
}

type encryptionMiddleware struct {
	next   ports.ScriptStore
	config EncryptionConfig
}

// NewEncryptionMiddleware creates a middleware that seals script bytes with
// AES-256-GCM. Every key must be 32 bytes.
func NewEncryptionMiddleware(config EncryptionConfig) (Middleware, error) {
	if len(config.ActiveKey) != 32 {
		return nil, errors.New("active key must be 32 bytes (AES-256)")
	}
	for i, k := range config.FallbackKeys {
		if len(k) != 32 {
			return nil, fmt.Errorf("fallback key %d must be 32 bytes (AES-256)", i)
		}
	}
	return func(next ports.ScriptStore) ports.ScriptStore {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}, nil
}

func (m *encryptionMiddleware) Save(ctx context.Context, assetID string, data []byte) error {
	sealed, err := encrypt(data, m.config.ActiveKey, []byte(assetID))
	if err != nil {
		return fmt.Errorf("failed to encrypt script: %w", err)
	}
	return m.next.Save(ctx, assetID, append(append([]byte(nil), envelopeMagic...), sealed...))
}

func (m *encryptionMiddleware) Load(ctx context.Context, assetID string) ([]byte, error) {
	data, err := m.next.Load(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(data, envelopeMagic) {
		if m.config.AllowPlaintext {
			return data, nil
		}
		return nil, fmt.Errorf("load %q: %w", assetID, ErrNotEncrypted)
	}

	plain, err := decryptWithRotation(data[len(envelopeMagic):], []byte(assetID), m.config.ActiveKey, m.config.FallbackKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt script: %w", err)
	}
	return plain, nil
}

func (m *encryptionMiddleware) Delete(ctx context.Context, assetID string) error {
	return m.next.Delete(ctx, assetID)
}

func (m *encryptionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// The asset id is bound as additional data, so a blob copied under another
// id fails to open.
func encrypt(plaintext, key, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, aad), nil
}

func decryptWithRotation(ciphertext, aad, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	// Try active key first
	if plain, err := decrypt(ciphertext, aad, activeKey); err == nil {
		return plain, nil
	}

	// Try fallbacks in order
	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, aad, key); err == nil {
			return plain, nil
		}
	}

	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext, aad, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	return gcm.Open(nil, nonce, ciphertext[gcm.NonceSize():], aad)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
