package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/domain/streak"
	"github.com/lioapp/lio-api/internal/repository"
)

// DeviceAuthResponse is returned when a device registers an anonymous user.
type DeviceAuthResponse struct {
	// UserID identifies the new user; the device keeps it with the tokens
	UserID uuid.UUID `json:"user_id"`

	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// StreakResponse is the current streak summary.
type StreakResponse struct {
	streak.Summary
	Degraded bool `json:"degraded,omitempty"`
}

// WeekResponse is the Monday-to-Sunday strip for the current week.
type WeekResponse struct {
	Days     []domain.WeeklyViewEntry `json:"days"`
	Degraded bool                     `json:"degraded,omitempty"`
}

// CalendarResponse holds every month since the first interaction, newest first.
type CalendarResponse struct {
	Months   []domain.MonthView `json:"months"`
	Degraded bool               `json:"degraded,omitempty"`
}

// AffirmationBatchRequest asks for the next page of the feed.
type AffirmationBatchRequest struct {
	Count int `json:"count" validate:"min=1,max=10"`
	// Seen lists texts already shown in this session
	Seen []string `json:"seen" validate:"max=500"`
}

// AffirmationBatchResponse carries the next page of the feed.
type AffirmationBatchResponse struct {
	Affirmations []domain.Affirmation `json:"affirmations"`
}

// ProfileRequest is the onboarding questionnaire. The premium flag is not
// accepted from clients.
type ProfileRequest struct {
	Name       string   `json:"name"       validate:"max=50"`
	AgeRange   string   `json:"ageRange"`
	Gender     string   `json:"gender"     validate:"max=30"`
	FocusAreas []string `json:"focusAreas" validate:"max=10"`
	Timezone   string   `json:"timezone"`
}

// ToDomain converts the request into a profile.
func (p ProfileRequest) ToDomain() domain.UserProfile {
	return domain.UserProfile{
		Name:       p.Name,
		AgeRange:   p.AgeRange,
		Gender:     p.Gender,
		FocusAreas: p.FocusAreas,
		Timezone:   p.Timezone,
	}
}

// PhraseRequest adds a custom phrase.
type PhraseRequest struct {
	Text string `json:"text" validate:"required"`
}

// PhrasesEnabledRequest toggles mixing custom phrases into the feed.
type PhrasesEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// PhrasesEnabledResponse reports whether custom phrases are mixed into the feed.
type PhrasesEnabledResponse struct {
	Enabled bool `json:"enabled"`
}

// FavoriteRequest favorites an affirmation from the feed.
type FavoriteRequest struct {
	ID       string `json:"id"       validate:"required,max=64"`
	Text     string `json:"text"     validate:"required,max=500"`
	Category string `json:"category" validate:"max=50"`
}

// NotificationSettingsRequest replaces the reminder preferences.
type NotificationSettingsRequest struct {
	Enabled     *bool `json:"enabled"     validate:"required"`
	Hour        int   `json:"hour"        validate:"gte=0,lte=23"`
	Minute      int   `json:"minute"      validate:"gte=0,lte=59"`
	TimesPerDay int   `json:"timesPerDay" validate:"gte=1,lte=10"`
}

// SnapshotBody carries every record of a user, keyed by record name.
type SnapshotBody struct {
	Records repository.Snapshot `json:"records" validate:"required"`
}
