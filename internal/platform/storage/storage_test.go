package storage

import (
	"context"
	"testing"

	"github.com/lioapp/lio-api/internal/config"
	"github.com/lioapp/lio-api/internal/platform/memory"
	"github.com/lioapp/lio-api/internal/platform/sqlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{name: "memory", cfg: config.DatabaseConfig{Driver: DriverMemory}},
		{name: "sqlite file", cfg: config.DatabaseConfig{Driver: sqlstore.DriverSQLite, URL: t.TempDir() + "/lio.db"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv, closeFn, err := Open(tc.cfg, nil)
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, closeFn()) })

			ctx := context.Background()
			require.NoError(t, kv.Set(ctx, "lio:u1:profile", `{"name":"Ana"}`))
			value, found, err := kv.Get(ctx, "lio:u1:profile")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `{"name":"Ana"}`, value)
		})
	}
}

func TestOpen_MemoryDriverType(t *testing.T) {
	t.Parallel()

	kv, _, err := Open(config.DatabaseConfig{Driver: DriverMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &memory.KVStore{}, kv)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, _, err := Open(config.DatabaseConfig{Driver: "mysql", URL: "x"}, nil)
	assert.Error(t, err)
}
