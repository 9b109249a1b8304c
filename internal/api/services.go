package api

import (
	"context"
	"time"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/domain/streak"
	"github.com/lioapp/lio-api/internal/repository"
	"github.com/lioapp/lio-api/internal/service"
)

// The handlers depend on these interfaces; the service package provides
// the implementations.

// StreakService records interactions and derives the streak views.
type StreakService interface {
	RecordInteraction(ctx context.Context, userID string, loc *time.Location) domain.InteractionResult
	WeeklyView(ctx context.Context, userID string, loc *time.Location) repository.Result[[]domain.WeeklyViewEntry]
	FullCalendar(ctx context.Context, userID string, loc *time.Location) repository.Result[[]domain.MonthView]
	Current(ctx context.Context, userID string, loc *time.Location) repository.Result[streak.Summary]
}

// LocationResolver picks the location that defines a user's calendar day.
type LocationResolver interface {
	Resolve(ctx context.Context, userID, requested string) *time.Location
}

// FeedService assembles pages of the affirmation feed.
type FeedService interface {
	Next(ctx context.Context, userID string, count int, seen []string) []domain.Affirmation
}

// ProfileService manages onboarding answers.
type ProfileService interface {
	Get(ctx context.Context, userID string) domain.UserProfile
	Update(ctx context.Context, userID string, profile domain.UserProfile) (domain.UserProfile, error)
}

// PhraseService manages custom phrases.
type PhraseService interface {
	List(ctx context.Context, userID string) []domain.CustomPhrase
	Add(ctx context.Context, userID, text string) (domain.CustomPhrase, error)
	Delete(ctx context.Context, userID, phraseID string) error
	Enabled(ctx context.Context, userID string) bool
	SetEnabled(ctx context.Context, userID string, enabled bool) error
}

// FavoriteService manages favorites.
type FavoriteService interface {
	List(ctx context.Context, userID string) []domain.Affirmation
	Add(ctx context.Context, userID string, a domain.Affirmation) ([]domain.Affirmation, error)
	Remove(ctx context.Context, userID, id string) error
}

// SettingsService manages notification preferences.
type SettingsService interface {
	Get(ctx context.Context, userID string) domain.NotificationSettings
	Update(ctx context.Context, userID string, settings domain.NotificationSettings) error
}

// SnapshotService exports and imports all records of a user.
type SnapshotService interface {
	Export(ctx context.Context, userID string) (repository.Snapshot, error)
	Import(ctx context.Context, userID string, snapshot repository.Snapshot) error
}

var (
	_ StreakService    = (*service.StreakEngine)(nil)
	_ LocationResolver = (*service.TimezoneResolver)(nil)
	_ FeedService      = (*service.FeedService)(nil)
	_ ProfileService   = (*service.ProfileService)(nil)
	_ PhraseService    = (*service.PhraseService)(nil)
	_ FavoriteService  = (*service.FavoriteService)(nil)
	_ SettingsService  = (*service.SettingsService)(nil)
	_ SnapshotService  = (*service.SnapshotService)(nil)
)
