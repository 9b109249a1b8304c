// Package memory provides an in-process implementation of the key-value
// store port. Data does not survive a restart; it backs tests, the CLI's
// dry runs and the "memory" database driver.
package memory

import (
	"context"
	"sync"

	"github.com/lioapp/lio-api/internal/store"
)

// KVStore is a map guarded by a RWMutex.
type KVStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// Ensure KVStore implements store.KeyValueStore interface
var _ store.KeyValueStore = (*KVStore)(nil)

// NewKVStore returns an empty store.
func NewKVStore() *KVStore {
	return &KVStore{entries: make(map[string]string)}
}

// Get implements store.KeyValueStore.Get.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, store.NewStoreError("kv_entry", "get", "context done", err)
	}
	if err := store.ValidateKey(key); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	return value, ok, nil
}

// Set implements store.KeyValueStore.Set.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

// SetMany implements store.KeyValueStore.SetMany.
func (s *KVStore) SetMany(ctx context.Context, entries map[string]string) error {
	if err := ctx.Err(); err != nil {
		return store.NewStoreError("kv_entry", "set", "context done", err)
	}
	for key := range entries {
		if err := store.ValidateKey(key); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range entries {
		s.entries[key] = value
	}
	return nil
}

// Len returns the number of stored keys.
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
