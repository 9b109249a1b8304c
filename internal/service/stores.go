package service

import (
	"context"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/repository"
)

// StreakStore loads and saves streak records.
type StreakStore interface {
	Load(ctx context.Context, userID string) repository.Result[*domain.StreakRecord]
	Save(ctx context.Context, userID string, record *domain.StreakRecord) error
}

// ProfileStore loads and saves onboarding profiles.
type ProfileStore interface {
	Load(ctx context.Context, userID string) repository.Result[domain.UserProfile]
	Save(ctx context.Context, userID string, profile domain.UserProfile) error
}

// PhraseStore loads and saves custom phrases and their feed flag.
type PhraseStore interface {
	Load(ctx context.Context, userID string) repository.Result[[]domain.CustomPhrase]
	Save(ctx context.Context, userID string, phrases []domain.CustomPhrase) error
	LoadEnabled(ctx context.Context, userID string) repository.Result[bool]
	SaveEnabled(ctx context.Context, userID string, enabled bool) error
}

// FavoriteStore loads and saves favorites.
type FavoriteStore interface {
	Load(ctx context.Context, userID string) repository.Result[[]domain.Affirmation]
	Save(ctx context.Context, userID string, favorites []domain.Affirmation) error
}

// SettingsStore loads and saves notification settings.
type SettingsStore interface {
	Load(ctx context.Context, userID string) repository.Result[domain.NotificationSettings]
	Save(ctx context.Context, userID string, settings domain.NotificationSettings) error
}

// SnapshotStore exports and imports all records of a user.
type SnapshotStore interface {
	Export(ctx context.Context, userID string) (repository.Snapshot, error)
	Import(ctx context.Context, userID string, snapshot repository.Snapshot) error
}

// Ensure the repositories satisfy the service ports
var (
	_ StreakStore   = (*repository.StreakRepository)(nil)
	_ ProfileStore  = (*repository.ProfileRepository)(nil)
	_ PhraseStore   = (*repository.PhrasesRepository)(nil)
	_ FavoriteStore = (*repository.FavoritesRepository)(nil)
	_ SettingsStore = (*repository.SettingsRepository)(nil)
	_ SnapshotStore = (*repository.SnapshotRepository)(nil)
)
