package repository

import (
	"context"
	"log/slog"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/store"
)

// StreakRepository persists StreakRecords.
type StreakRepository struct {
	rec jsonRecord[*domain.StreakRecord]
}

// NewStreakRepository creates a StreakRepository over kv.
func NewStreakRepository(kv store.KeyValueStore, logger *slog.Logger) *StreakRepository {
	return &StreakRepository{rec: newJSONRecord(kv, logger, RecordStreak, domain.NewStreakRecord)}
}

// Load returns the user's streak record, never nil.
func (r *StreakRepository) Load(ctx context.Context, userID string) Result[*domain.StreakRecord] {
	res := r.rec.load(ctx, userID)
	if res.Value == nil {
		res.Value = domain.NewStreakRecord()
	}
	res.Value.Normalize()
	return res
}

// Save stores the user's streak record.
func (r *StreakRepository) Save(ctx context.Context, userID string, record *domain.StreakRecord) error {
	return r.rec.save(ctx, userID, record)
}

// ProfileRepository persists onboarding profiles.
type ProfileRepository struct {
	rec jsonRecord[domain.UserProfile]
}

// NewProfileRepository creates a ProfileRepository over kv.
func NewProfileRepository(kv store.KeyValueStore, logger *slog.Logger) *ProfileRepository {
	return &ProfileRepository{rec: newJSONRecord(kv, logger, RecordProfile, func() domain.UserProfile {
		return domain.UserProfile{}
	})}
}

// Load returns the user's profile.
func (r *ProfileRepository) Load(ctx context.Context, userID string) Result[domain.UserProfile] {
	return r.rec.load(ctx, userID)
}

// Save stores the user's profile.
func (r *ProfileRepository) Save(ctx context.Context, userID string, profile domain.UserProfile) error {
	return r.rec.save(ctx, userID, profile)
}

// PhrasesRepository persists custom phrases and the flag mixing them into the feed.
type PhrasesRepository struct {
	phrases jsonRecord[[]domain.CustomPhrase]
	enabled jsonRecord[bool]
}

// NewPhrasesRepository creates a PhrasesRepository over kv.
func NewPhrasesRepository(kv store.KeyValueStore, logger *slog.Logger) *PhrasesRepository {
	return &PhrasesRepository{
		phrases: newJSONRecord(kv, logger, RecordCustomPhrases, func() []domain.CustomPhrase {
			return []domain.CustomPhrase{}
		}),
		enabled: newJSONRecord(kv, logger, RecordCustomPhrasesEnabled, func() bool { return false }),
	}
}

// Load returns the user's phrases, oldest first.
func (r *PhrasesRepository) Load(ctx context.Context, userID string) Result[[]domain.CustomPhrase] {
	res := r.phrases.load(ctx, userID)
	if res.Value == nil {
		res.Value = []domain.CustomPhrase{}
	}
	return res
}

// Save replaces the user's phrases.
func (r *PhrasesRepository) Save(ctx context.Context, userID string, phrases []domain.CustomPhrase) error {
	if phrases == nil {
		phrases = []domain.CustomPhrase{}
	}
	return r.phrases.save(ctx, userID, phrases)
}

// LoadEnabled reports whether custom phrases are mixed into the feed.
func (r *PhrasesRepository) LoadEnabled(ctx context.Context, userID string) Result[bool] {
	return r.enabled.load(ctx, userID)
}

// SaveEnabled stores the custom-phrases flag.
func (r *PhrasesRepository) SaveEnabled(ctx context.Context, userID string, enabled bool) error {
	return r.enabled.save(ctx, userID, enabled)
}

// FavoritesRepository persists favorited affirmations.
type FavoritesRepository struct {
	rec jsonRecord[[]domain.Affirmation]
}

// NewFavoritesRepository creates a FavoritesRepository over kv.
func NewFavoritesRepository(kv store.KeyValueStore, logger *slog.Logger) *FavoritesRepository {
	return &FavoritesRepository{rec: newJSONRecord(kv, logger, RecordFavorites, func() []domain.Affirmation {
		return []domain.Affirmation{}
	})}
}

// Load returns the user's favorites, most recent first.
func (r *FavoritesRepository) Load(ctx context.Context, userID string) Result[[]domain.Affirmation] {
	res := r.rec.load(ctx, userID)
	if res.Value == nil {
		res.Value = []domain.Affirmation{}
	}
	return res
}

// Save replaces the user's favorites.
func (r *FavoritesRepository) Save(ctx context.Context, userID string, favorites []domain.Affirmation) error {
	if favorites == nil {
		favorites = []domain.Affirmation{}
	}
	return r.rec.save(ctx, userID, favorites)
}

// SettingsRepository persists notification settings.
type SettingsRepository struct {
	rec jsonRecord[domain.NotificationSettings]
}

// NewSettingsRepository creates a SettingsRepository over kv.
func NewSettingsRepository(kv store.KeyValueStore, logger *slog.Logger) *SettingsRepository {
	return &SettingsRepository{
		rec: newJSONRecord(kv, logger, RecordNotificationSettings, domain.DefaultNotificationSettings),
	}
}

// Load returns the user's notification settings.
func (r *SettingsRepository) Load(ctx context.Context, userID string) Result[domain.NotificationSettings] {
	return r.rec.load(ctx, userID)
}

// Save stores the user's notification settings.
func (r *SettingsRepository) Save(ctx context.Context, userID string, settings domain.NotificationSettings) error {
	return r.rec.save(ctx, userID, settings)
}
