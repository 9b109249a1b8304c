package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/platform/logger"
	"github.com/microcosm-cc/bluemonday"
)

// PhraseService manages the user's own phrases ("Mis frases").
type PhraseService struct {
	store  PhraseStore
	clock  Clock
	policy *bluemonday.Policy
	logger *slog.Logger
}

// NewPhraseService creates a PhraseService. It panics if store is nil.
func NewPhraseService(store PhraseStore, clock Clock, logger *slog.Logger) *PhraseService {
	if store == nil {
		panic("phrase store cannot be nil")
	}
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PhraseService{
		store:  store,
		clock:  clock,
		policy: bluemonday.StrictPolicy(),
		logger: logger.With(slog.String("component", "phrase_service")),
	}
}

// List returns the user's phrases, oldest first.
func (s *PhraseService) List(ctx context.Context, userID string) []domain.CustomPhrase {
	return s.store.Load(ctx, userID).Value
}

// Add stores a new phrase after stripping markup and surrounding space.
// It returns domain.ErrEmptyContent, domain.ErrContentTooLong or
// domain.ErrDuplicatePhrase for unacceptable text.
func (s *PhraseService) Add(ctx context.Context, userID, text string) (domain.CustomPhrase, error) {
	clean, err := s.cleanText(text)
	if err != nil {
		return domain.CustomPhrase{}, err
	}

	loaded := s.store.Load(ctx, userID)
	if loaded.Unavailable() {
		return domain.CustomPhrase{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, loaded.Err)
	}
	for _, p := range loaded.Value {
		if p.Text == clean {
			return domain.CustomPhrase{}, domain.ErrDuplicatePhrase
		}
	}

	phrase := domain.NewCustomPhrase(clean, s.clock.Now())
	phrases := append(loaded.Value, phrase)
	if err := s.store.Save(ctx, userID, phrases); err != nil {
		return domain.CustomPhrase{}, NewServiceError("add_phrase", "failed to save phrases", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).InfoContext(ctx, "custom phrase added",
		slog.String("user_id", userID),
		slog.String("phrase_id", phrase.ID))
	return phrase, nil
}

// Delete removes the phrase with the given id. It returns domain.ErrNotFound
// when the user has no such phrase.
func (s *PhraseService) Delete(ctx context.Context, userID, phraseID string) error {
	loaded := s.store.Load(ctx, userID)
	if loaded.Unavailable() {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, loaded.Err)
	}

	kept := make([]domain.CustomPhrase, 0, len(loaded.Value))
	for _, p := range loaded.Value {
		if p.ID != phraseID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(loaded.Value) {
		return domain.ErrNotFound
	}

	if err := s.store.Save(ctx, userID, kept); err != nil {
		return NewServiceError("delete_phrase", "failed to save phrases", err)
	}
	return nil
}

// Enabled reports whether custom phrases are mixed into the feed.
func (s *PhraseService) Enabled(ctx context.Context, userID string) bool {
	return s.store.LoadEnabled(ctx, userID).Value
}

// SetEnabled turns mixing custom phrases into the feed on or off.
func (s *PhraseService) SetEnabled(ctx context.Context, userID string, enabled bool) error {
	if err := s.store.SaveEnabled(ctx, userID, enabled); err != nil {
		return NewServiceError("set_phrases_enabled", "failed to save flag", err)
	}
	return nil
}

func (s *PhraseService) cleanText(text string) (string, error) {
	clean := strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
	clean = strings.Join(strings.Fields(clean), " ")
	if clean == "" {
		return "", domain.ErrEmptyContent
	}
	if utf8.RuneCountInString(clean) > domain.MaxCustomPhraseLength {
		return "", fmt.Errorf("%w: at most %d characters", domain.ErrContentTooLong, domain.MaxCustomPhraseLength)
	}
	return clean, nil
}
