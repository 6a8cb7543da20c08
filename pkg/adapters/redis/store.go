package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/hexrune/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces script keys.
const DefaultPrefix = "hexrune:script:"

// Store implements ports.ScriptStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored scripts.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for stored scripts.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(assetID string) string {
	return s.prefix + assetID
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save writes the script bytes and indexes the asset id.
func (s *Store) Save(ctx context.Context, assetID string, data []byte) error {
	pipe := s.client.Pipeline()

	pipe.Set(ctx, s.key(assetID), data, s.ttl)

	// Score = expiry time so List can prune lazily. No TTL scores far in the future.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: assetID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the script bytes.
func (s *Store) Load(ctx context.Context, assetID string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(assetID)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrScriptNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return data, nil
}

// Delete removes the script and its index entry.
func (s *Store) Delete(ctx context.Context, assetID string) error {
	pipe := s.client.Pipeline()

	pipe.Del(ctx, s.key(assetID))
	pipe.ZRem(ctx, s.indexKey(), assetID)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns the stored asset ids, pruning expired index entries first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired scripts: %w", err)
	}

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list scripts: %w", err)
	}
	return ids, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
