// Package config loads hexrune.yaml for the CLI and server.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "hexrune.yaml"

// Config is the CLI and server configuration.
type Config struct {
	LogLevel string  `mapstructure:"log_level"`
	Store    Store   `mapstructure:"store"`
	Metrics  Metrics `mapstructure:"metrics"`
	HTTP     HTTP    `mapstructure:"http"`
}

// Store selects where script assets live.
type Store struct {
	// Backend is "file", "redis" or "memory".
	Backend    string     `mapstructure:"backend"`
	Dir        string     `mapstructure:"dir"`
	Redis      Redis      `mapstructure:"redis"`
	Encryption Encryption `mapstructure:"encryption"`
}

// Encryption seals stored scripts with AES-256-GCM when Key is set.
// Keys are base64 encoded 32 byte values.
type Encryption struct {
	Key            string   `mapstructure:"key"`
	FallbackKeys   []string `mapstructure:"fallback_keys"`
	AllowPlaintext bool     `mapstructure:"allow_plaintext"`
}

type Redis struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type Metrics struct {
	// Addr serves /metrics on its own listener. Empty mounts it on the HTTP API.
	Addr string `mapstructure:"addr"`
}

type HTTP struct {
	Addr string `mapstructure:"addr"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		LogLevel: "info",
		Store: Store{
			Backend: "file",
			Dir:     ".hexrune/scripts",
			Redis: Redis{
				Addr:   "localhost:6379",
				Prefix: "hexrune:script:",
			},
		},
		HTTP: HTTP{Addr: ":8080"},
	}
}

// Load reads path and overlays it on Defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML and overlays it on Defaults.
func Parse(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Defaults()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case "file", "redis", "memory":
	default:
		return fmt.Errorf("invalid config: unknown store backend %q", c.Store.Backend)
	}
	if _, _, err := c.Store.Encryption.Keys(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Enabled reports whether a key is configured.
func (e Encryption) Enabled() bool { return e.Key != "" }

// Keys decodes the active and fallback keys. Without a key it returns nils.
func (e Encryption) Keys() ([]byte, [][]byte, error) {
	if !e.Enabled() {
		return nil, nil, nil
	}
	active, err := decodeKey(e.Key)
	if err != nil {
		return nil, nil, fmt.Errorf("encryption key: %w", err)
	}
	fallback := make([][]byte, 0, len(e.FallbackKeys))
	for i, k := range e.FallbackKeys {
		key, err := decodeKey(k)
		if err != nil {
			return nil, nil, fmt.Errorf("fallback key %d: %w", i, err)
		}
		fallback = append(fallback, key)
	}
	return active, fallback, nil
}

func decodeKey(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("want 32 bytes, got %d", len(key))
	}
	return key, nil
}
