package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lioapp/lio-api/internal/domain"
)

// FavoriteService manages favorited affirmations.
type FavoriteService struct {
	store  FavoriteStore
	logger *slog.Logger
}

// NewFavoriteService creates a FavoriteService. It panics if store is nil.
func NewFavoriteService(store FavoriteStore, logger *slog.Logger) *FavoriteService {
	if store == nil {
		panic("favorite store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FavoriteService{store: store, logger: logger.With(slog.String("component", "favorite_service"))}
}

// List returns the favorites, most recent first.
func (s *FavoriteService) List(ctx context.Context, userID string) []domain.Affirmation {
	return s.store.Load(ctx, userID).Value
}

// Add puts a at the front of the favorites. Adding an id that is already
// a favorite changes nothing.
func (s *FavoriteService) Add(ctx context.Context, userID string, a domain.Affirmation) ([]domain.Affirmation, error) {
	a.Text = strings.TrimSpace(a.Text)
	if a.ID == "" || a.Text == "" {
		return nil, fmt.Errorf("%w: favorite needs an id and text", domain.ErrValidation)
	}

	loaded := s.store.Load(ctx, userID)
	if loaded.Unavailable() {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, loaded.Err)
	}
	for _, f := range loaded.Value {
		if f.ID == a.ID {
			return loaded.Value, nil
		}
	}

	favorites := append([]domain.Affirmation{a}, loaded.Value...)
	if err := s.store.Save(ctx, userID, favorites); err != nil {
		return nil, NewServiceError("add_favorite", "failed to save favorites", err)
	}
	return favorites, nil
}

// Remove deletes the favorite with the given id. It returns domain.ErrNotFound
// when there is none.
func (s *FavoriteService) Remove(ctx context.Context, userID, id string) error {
	loaded := s.store.Load(ctx, userID)
	if loaded.Unavailable() {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, loaded.Err)
	}

	kept := make([]domain.Affirmation, 0, len(loaded.Value))
	for _, f := range loaded.Value {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(loaded.Value) {
		return domain.ErrNotFound
	}

	if err := s.store.Save(ctx, userID, kept); err != nil {
		return NewServiceError("remove_favorite", "failed to save favorites", err)
	}
	return nil
}
