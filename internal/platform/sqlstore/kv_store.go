package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lioapp/lio-api/internal/platform/logger"
	"github.com/lioapp/lio-api/internal/store"
)

const (
	getQuery = `SELECT value FROM kv_entries WHERE key = $1`

	// ON CONFLICT ... excluded is understood by both PostgreSQL and SQLite.
	upsertQuery = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at
	`
)

// KVStore implements store.KeyValueStore on a kv_entries table.
type KVStore struct {
	db       *sqlx.DB
	logger   *slog.Logger
	timeFunc func() time.Time
}

// Ensure KVStore implements store.KeyValueStore interface
var _ store.KeyValueStore = (*KVStore)(nil)

// NewKVStore creates a SQL-backed key-value store. The schema must already be
// migrated. If logger is nil, a default logger will be used.
func NewKVStore(db *sqlx.DB, logger *slog.Logger) *KVStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &KVStore{
		db:       db,
		logger:   logger.With(slog.String("component", "kv_store")),
		timeFunc: time.Now,
	}
}

// Get implements store.KeyValueStore.Get.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := store.ValidateKey(key); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.GetContext(ctx, &value, getQuery, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.ErrorContext(ctx, "failed to read kv entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return "", false, store.NewStoreError("kv_entry", "get", "query failed", MapError(err))
	}

	return value, true, nil
}

// Set implements store.KeyValueStore.Set.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := store.ValidateKey(key); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, upsertQuery, key, value, s.timeFunc().UTC()); err != nil {
		log.ErrorContext(ctx, "failed to write kv entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return store.NewStoreError("kv_entry", "set", "upsert failed", MapError(err))
	}

	log.DebugContext(ctx, "kv entry written",
		slog.String("key", key),
		slog.Int("value_length", len(value)))
	return nil
}

// SetMany implements store.KeyValueStore.SetMany inside a single transaction.
// Keys are written in sorted order so concurrent batches lock rows consistently.
func (s *KVStore) SetMany(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		if err := store.ValidateKey(key); err != nil {
			return err
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.timeFunc().UTC()

	err := store.RunInTransaction(logger.WithLogger(ctx, log), s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, upsertQuery, key, entries[key], now); err != nil {
				return store.NewStoreError("kv_entry", "set_many", "upsert failed: "+key, MapError(err))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "kv batch written", slog.Int("entries", len(keys)))
	return nil
}
