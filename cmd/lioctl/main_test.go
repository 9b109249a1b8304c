package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/lioapp/lio-api/internal/config"
	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver, url string) *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: 8080, LogLevel: "info", DefaultTimezone: "UTC", RequestTimeoutSeconds: 5},
		Database: config.DatabaseConfig{Driver: driver, URL: url},
		Auth: config.AuthConfig{
			JWTSecret:                   "thisisasecretkeythatis32charslong!!",
			TokenLifetimeMinutes:        60,
			RefreshTokenLifetimeMinutes: 120,
		},
		LLM: config.LLMConfig{ModelName: "gemini-2.0-flash", MaxOutputTokens: 256, RetryDelaySeconds: 1},
	}
}

// execute parses args and runs the selected command, returning its stdout.
func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("lioctl"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}

	_, l := logger.NewTestLogger(t)
	var out bytes.Buffer
	err = kctx.Run(&Context{Context: context.Background(), Config: cfg, Logger: l, Out: &out, JSON: cli.JSON})
	return out.String(), err
}

func TestStreakRecord(t *testing.T) {
	t.Parallel()

	out, err := execute(t, testConfig("memory", ""), "streak", "record", "--user", "device-1")
	require.NoError(t, err)
	assert.Equal(t, "reset: streak 1\n", out)
}

func TestStreakRecord_JSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, testConfig("memory", ""), "--json", "streak", "record", "--user", "device-1", "--tz", "Asia/Tokyo")
	require.NoError(t, err)

	var result domain.InteractionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.CurrentStreak)
	assert.True(t, result.IsNewDay)
}

func TestStreakRecord_PersistsAcrossCommands(t *testing.T) {
	t.Parallel()

	cfg := testConfig("sqlite", filepath.Join(t.TempDir(), "lio.db"))

	_, err := execute(t, cfg, "streak", "record", "--user", "device-1")
	require.NoError(t, err)

	out, err := execute(t, cfg, "streak", "record", "--user", "device-1")
	require.NoError(t, err)
	assert.Equal(t, "already-done: streak 1\n", out)

	out, err = execute(t, cfg, "streak", "show", "--user", "device-1")
	require.NoError(t, err)
	assert.Contains(t, out, "current 1, longest 1, completed today: true")

	out, err = execute(t, cfg, "streak", "week", "--user", "device-1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, out, "[x]")

	out, err = execute(t, cfg, "streak", "calendar", "--user", "device-1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 days completed")
}

func TestStreak_RequiresUser(t *testing.T) {
	t.Parallel()

	_, err := execute(t, testConfig("memory", ""), "streak", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user")
}

func TestAffirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		lines int
	}{
		{name: "default count", args: []string{"affirm"}, lines: 5},
		{name: "single", args: []string{"affirm", "--count", "1"}, lines: 1},
		{name: "with profile", args: []string{"affirm", "--count", "3", "--user", "device-1"}, lines: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, testConfig("memory", ""), tt.args...)
			require.NoError(t, err)
			assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), tt.lines)
		})
	}
}

func TestAffirm_CountOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := execute(t, testConfig("memory", ""), "affirm", "--count", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--count")
}

func TestMigrate(t *testing.T) {
	t.Parallel()

	cfg := testConfig("sqlite", filepath.Join(t.TempDir(), "lio.db"))

	out, err := execute(t, cfg, "migrate", "up")
	require.NoError(t, err)
	assert.Equal(t, "schema version 2\n", out)

	out, err = execute(t, cfg, "--json", "migrate", "status")
	require.NoError(t, err)
	var status map[string]int64
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, int64(2), status["version"])

	out, err = execute(t, cfg, "migrate", "down")
	require.NoError(t, err)
	assert.Equal(t, "schema version 1\n", out)
}

func TestMigrate_MemoryDriver(t *testing.T) {
	t.Parallel()

	_, err := execute(t, testConfig("memory", ""), "migrate", "up")
	assert.ErrorIs(t, err, errNoSchema)
}
