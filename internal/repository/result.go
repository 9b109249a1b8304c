package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lioapp/lio-api/internal/platform/logger"
	"github.com/lioapp/lio-api/internal/store"
)

// Errors returned by repositories.
var (
	// ErrCorruptRecord is reported when a stored document cannot be decoded.
	ErrCorruptRecord = errors.New("stored record is corrupt")

	// ErrInvalidUserID is returned for user IDs that cannot form a key.
	ErrInvalidUserID = errors.New("invalid user id")
)

// Source tells where a loaded value came from.
type Source int

const (
	// SourceDefault means nothing was stored yet.
	SourceDefault Source = iota
	// SourceStored means the value was decoded from storage.
	SourceStored
	// SourceDegraded means storage failed and the value is a default.
	SourceDegraded
)

// String implements fmt.Stringer.
func (s Source) String() string {
	switch s {
	case SourceStored:
		return "stored"
	case SourceDegraded:
		return "degraded"
	default:
		return "default"
	}
}

// Result carries a loaded value together with its provenance.
// Err is set only when Source is SourceDegraded.
type Result[T any] struct {
	Value  T
	Source Source
	Err    error
}

// Degraded reports whether the value had to be substituted after a failure.
func (r Result[T]) Degraded() bool {
	return r.Source == SourceDegraded
}

// Corrupt reports whether the stored document exists but cannot be decoded.
// Unlike a failed read this never heals, so callers may overwrite it.
func (r Result[T]) Corrupt() bool {
	return r.Degraded() && errors.Is(r.Err, ErrCorruptRecord)
}

// Unavailable reports a degraded load whose stored value is unknown.
// Writing after such a load could replace data that is still intact.
func (r Result[T]) Unavailable() bool {
	return r.Degraded() && !r.Corrupt()
}

// Record names, the last segment of every key.
const (
	RecordStreak               = "streak_data"
	RecordProfile              = "profile"
	RecordCustomPhrases        = "custom_phrases"
	RecordCustomPhrasesEnabled = "custom_phrases_enabled"
	RecordFavorites            = "favorites"
	RecordNotificationSettings = "notification_settings"
)

// Records lists every record name a user can have.
var Records = []string{
	RecordStreak,
	RecordProfile,
	RecordCustomPhrases,
	RecordCustomPhrasesEnabled,
	RecordFavorites,
	RecordNotificationSettings,
}

// KeyPrefix starts every key written by this package.
const KeyPrefix = "lio"

// Key builds the storage key for a user's record.
func Key(userID, record string) (string, error) {
	if userID == "" || strings.ContainsAny(userID, ": \t\n") {
		return "", fmt.Errorf("%w: %q", ErrInvalidUserID, userID)
	}
	return KeyPrefix + ":" + userID + ":" + record, nil
}

// jsonRecord loads and saves one JSON-encoded record type.
type jsonRecord[T any] struct {
	kv       store.KeyValueStore
	logger   *slog.Logger
	record   string
	defaults func() T
}

func newJSONRecord[T any](kv store.KeyValueStore, l *slog.Logger, record string, defaults func() T) jsonRecord[T] {
	if kv == nil {
		panic("key-value store cannot be nil")
	}
	if l == nil {
		l = slog.Default()
	}
	return jsonRecord[T]{
		kv:       kv,
		logger:   l.With(slog.String("component", "repository"), slog.String("record", record)),
		record:   record,
		defaults: defaults,
	}
}

func (r jsonRecord[T]) load(ctx context.Context, userID string) Result[T] {
	log := logger.FromContextOrDefault(ctx, r.logger)

	key, err := Key(userID, r.record)
	if err != nil {
		return Result[T]{Value: r.defaults(), Source: SourceDegraded, Err: err}
	}

	raw, found, err := r.kv.Get(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "record read failed, using defaults",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return Result[T]{Value: r.defaults(), Source: SourceDegraded, Err: err}
	}
	if !found {
		return Result[T]{Value: r.defaults(), Source: SourceDefault}
	}

	value, err := decode(raw, r.defaults)
	if err != nil {
		log.WarnContext(ctx, "record is corrupt, using defaults",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return Result[T]{Value: r.defaults(), Source: SourceDegraded, Err: err}
	}
	return Result[T]{Value: value, Source: SourceStored}
}

func (r jsonRecord[T]) save(ctx context.Context, userID string, value T) error {
	key, err := Key(userID, r.record)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.record, err)
	}
	if err := r.kv.Set(ctx, key, string(raw)); err != nil {
		logger.FromContextOrDefault(ctx, r.logger).ErrorContext(ctx, "record write failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to save %s: %w", r.record, err)
	}
	return nil
}

// decode starts from the defaults so that fields absent from older
// documents keep their default values.
func decode[T any](raw string, defaults func() T) (T, error) {
	value := defaults()
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return defaults(), fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return value, nil
}
