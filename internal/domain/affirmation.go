package domain

import (
	"time"

	"github.com/google/uuid"
)

// Provenance categories attached to affirmations.
const (
	// CategoryGenerated marks text produced by the language model.
	CategoryGenerated = "Personalizado"
	// CategoryFallback marks text drawn from the static pool.
	CategoryFallback = "Fallback"
	// CategoryCustom marks phrases written by the user.
	CategoryCustom = "Mis frases"
)

// MaxCustomPhraseLength bounds user-authored phrases, in characters.
const MaxCustomPhraseLength = 200

// Affirmation is a single short motivational text shown in the feed.
type Affirmation struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
}

// NewAffirmation creates an affirmation with a fresh unique ID.
func NewAffirmation(text, category string) Affirmation {
	return Affirmation{
		ID:       uuid.NewString(),
		Text:     text,
		Category: category,
	}
}

// CustomPhrase is an affirmation authored by the user.
type CustomPhrase struct {
	Affirmation
	CreatedAt time.Time `json:"createdAt"`
}

// NewCustomPhrase creates a user phrase with a fresh ID.
func NewCustomPhrase(text string, now time.Time) CustomPhrase {
	return CustomPhrase{
		Affirmation: NewAffirmation(text, CategoryCustom),
		CreatedAt:   now.UTC(),
	}
}
