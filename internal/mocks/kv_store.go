package mocks

import (
	"context"
	"sync"

	"github.com/lioapp/lio-api/internal/platform/memory"
	"github.com/lioapp/lio-api/internal/store"
)

// MockKeyValueStore implements store.KeyValueStore for testing.
// Calls fall through to an in-memory store unless an Fn or an Err is set.
type MockKeyValueStore struct {
	// GetFn, SetFn and SetManyFn override the in-memory behavior when set
	GetFn     func(ctx context.Context, key string) (string, bool, error)
	SetFn     func(ctx context.Context, key, value string) error
	SetManyFn func(ctx context.Context, entries map[string]string) error

	// GetErr and SetErr make every read or write fail
	GetErr error
	SetErr error

	backing *memory.KVStore
	once    sync.Once

	mu       sync.Mutex
	GetCalls []string
	SetCalls []string
}

// Ensure MockKeyValueStore implements store.KeyValueStore interface
var _ store.KeyValueStore = (*MockKeyValueStore)(nil)

func (m *MockKeyValueStore) mem() *memory.KVStore {
	m.once.Do(func() {
		if m.backing == nil {
			m.backing = memory.NewKVStore()
		}
	})
	return m.backing
}

// Get implements store.KeyValueStore.
func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, key)
	m.mu.Unlock()

	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	return m.mem().Get(ctx, key)
}

// Set implements store.KeyValueStore.
func (m *MockKeyValueStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	m.SetCalls = append(m.SetCalls, key)
	m.mu.Unlock()

	if m.SetFn != nil {
		return m.SetFn(ctx, key, value)
	}
	if m.SetErr != nil {
		return m.SetErr
	}
	return m.mem().Set(ctx, key, value)
}

// SetMany implements store.KeyValueStore.
func (m *MockKeyValueStore) SetMany(ctx context.Context, entries map[string]string) error {
	m.mu.Lock()
	for key := range entries {
		m.SetCalls = append(m.SetCalls, key)
	}
	m.mu.Unlock()

	if m.SetManyFn != nil {
		return m.SetManyFn(ctx, entries)
	}
	if m.SetErr != nil {
		return m.SetErr
	}
	return m.mem().SetMany(ctx, entries)
}

// Put seeds a raw value, bypassing failure injection and call tracking.
func (m *MockKeyValueStore) Put(key, value string) {
	_ = m.mem().Set(context.Background(), key, value)
}

// SetCallCount returns how many keys were written.
func (m *MockKeyValueStore) SetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SetCalls)
}
