package service

import (
	"context"
	"log/slog"

	"github.com/lioapp/lio-api/internal/repository"
)

// SnapshotService moves all of a user's records in and out in one piece.
type SnapshotService struct {
	store  SnapshotStore
	logger *slog.Logger
}

// NewSnapshotService creates a SnapshotService. It panics if store is nil.
func NewSnapshotService(store SnapshotStore, logger *slog.Logger) *SnapshotService {
	if store == nil {
		panic("snapshot store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotService{store: store, logger: logger.With(slog.String("component", "snapshot_service"))}
}

// Export returns every record stored for userID.
func (s *SnapshotService) Export(ctx context.Context, userID string) (repository.Snapshot, error) {
	snapshot, err := s.store.Export(ctx, userID)
	if err != nil {
		return nil, NewServiceError("export_snapshot", "failed to read records", err)
	}
	return snapshot, nil
}

// Import replaces the records named in snapshot. Invalid snapshots return
// an error wrapping repository.ErrUnknownRecord or repository.ErrCorruptRecord
// and write nothing.
func (s *SnapshotService) Import(ctx context.Context, userID string, snapshot repository.Snapshot) error {
	if err := s.store.Import(ctx, userID, snapshot); err != nil {
		return NewServiceError("import_snapshot", "failed to import records", err)
	}
	return nil
}
