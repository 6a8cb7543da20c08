package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/hexrune/pkg/domain"
)

// Store implements ports.ScriptStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Save keeps a private copy of the serialized script.
func (s *Store) Save(ctx context.Context, assetID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[assetID] = append([]byte(nil), data...)
	return nil
}

// Load returns a copy so callers can't mutate the stored bytes.
func (s *Store) Load(ctx context.Context, assetID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[assetID]
	if !ok {
		return nil, domain.ErrScriptNotFound
	}
	return append([]byte(nil), data...), nil
}

// Delete removes the script. Missing ids are not an error.
func (s *Store) Delete(ctx context.Context, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, assetID)
	return nil
}

// List returns the stored asset ids, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
