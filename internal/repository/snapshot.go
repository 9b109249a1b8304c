package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/platform/logger"
	"github.com/lioapp/lio-api/internal/store"
)

// ErrUnknownRecord is returned when importing a record name that is not in Records.
var ErrUnknownRecord = errors.New("unknown record")

// Snapshot maps record names to their raw JSON documents.
type Snapshot map[string]json.RawMessage

// recordDecoders checks that a document decodes into its record type.
var recordDecoders = map[string]func([]byte) error{
	RecordStreak:               decodeAs[domain.StreakRecord],
	RecordProfile:              decodeAs[domain.UserProfile],
	RecordCustomPhrases:        decodeAs[[]domain.CustomPhrase],
	RecordCustomPhrasesEnabled: decodeAs[bool],
	RecordFavorites:            decodeAs[[]domain.Affirmation],
	RecordNotificationSettings: decodeAs[domain.NotificationSettings],
}

func decodeAs[T any](raw []byte) error {
	var v T
	return json.Unmarshal(raw, &v)
}

// SnapshotRepository moves all of a user's records in and out at once,
// for example when a device uploads the data it kept locally.
type SnapshotRepository struct {
	kv     store.KeyValueStore
	logger *slog.Logger
}

// NewSnapshotRepository creates a SnapshotRepository over kv.
func NewSnapshotRepository(kv store.KeyValueStore, l *slog.Logger) *SnapshotRepository {
	if kv == nil {
		panic("key-value store cannot be nil")
	}
	if l == nil {
		l = slog.Default()
	}
	return &SnapshotRepository{kv: kv, logger: l.With(slog.String("component", "snapshot_repository"))}
}

// Export returns every record stored for userID. Records never written are omitted.
func (r *SnapshotRepository) Export(ctx context.Context, userID string) (Snapshot, error) {
	snapshot := make(Snapshot, len(Records))
	for _, record := range Records {
		key, err := Key(userID, record)
		if err != nil {
			return nil, err
		}
		raw, found, err := r.kv.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", record, err)
		}
		if !found {
			continue
		}
		if !json.Valid([]byte(raw)) {
			logger.FromContextOrDefault(ctx, r.logger).Warn("skipping corrupt record in export",
				slog.String("key", key))
			continue
		}
		snapshot[record] = json.RawMessage(raw)
	}
	return snapshot, nil
}

// Import validates every record in snapshot and writes them in one batch.
// Nothing is written if any record is unknown or does not decode.
func (r *SnapshotRepository) Import(ctx context.Context, userID string, snapshot Snapshot) error {
	entries := make(map[string]string, len(snapshot))
	for record, raw := range snapshot {
		decodeCheck, ok := recordDecoders[record]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownRecord, record)
		}
		if err := decodeCheck(raw); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCorruptRecord, record, err)
		}
		key, err := Key(userID, record)
		if err != nil {
			return err
		}
		entries[key] = string(raw)
	}

	if err := r.kv.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("failed to import snapshot: %w", err)
	}

	logger.FromContextOrDefault(ctx, r.logger).Info("snapshot imported",
		slog.String("user_id", userID),
		slog.Int("records", len(entries)))
	return nil
}
