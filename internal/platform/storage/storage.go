// Package storage selects and opens the key-value backend named in the
// configuration.
package storage

import (
	"fmt"
	"log/slog"

	"github.com/lioapp/lio-api/internal/config"
	"github.com/lioapp/lio-api/internal/platform/memory"
	"github.com/lioapp/lio-api/internal/platform/sqlstore"
	"github.com/lioapp/lio-api/internal/store"
)

// DriverMemory keeps everything in process memory. Data is lost on exit.
const DriverMemory = "memory"

// Open returns the store for cfg.Driver. SQL backends are migrated to the
// latest schema before use. The returned close function releases the
// connection and is never nil.
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (store.KeyValueStore, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Driver == DriverMemory {
		logger.Warn("using in-memory storage, data will not survive a restart")
		return memory.NewKVStore(), func() error { return nil }, nil
	}

	db, err := sqlstore.Open(cfg.Driver, cfg.URL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}
	if err := sqlstore.MigrateUp(db.DB, cfg.Driver, logger); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return sqlstore.NewKVStore(db, logger), db.Close, nil
}
