package store

import (
	"context"
	"strings"
)

// MaxKeyLength bounds keys accepted by every KeyValueStore implementation.
const MaxKeyLength = 255

// KeyValueStore is a durable string-to-string store.
// Implementations must be safe for concurrent use.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key has
	// never been written; that is not an error.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// SetMany stores every entry atomically: either all entries are written or none.
	SetMany(ctx context.Context, entries map[string]string) error
}

// ValidateKey reports ErrInvalidKey for empty, oversized or whitespace-padded keys.
func ValidateKey(key string) error {
	if key == "" || len(key) > MaxKeyLength || strings.TrimSpace(key) != key {
		return NewStoreError("kv_entry", "validate", "invalid key", ErrInvalidKey)
	}
	return nil
}
