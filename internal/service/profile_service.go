package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/platform/logger"
)

// ProfileService manages onboarding answers.
type ProfileService struct {
	store  ProfileStore
	logger *slog.Logger
}

// NewProfileService creates a ProfileService. It panics if store is nil.
func NewProfileService(store ProfileStore, logger *slog.Logger) *ProfileService {
	if store == nil {
		panic("profile store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileService{store: store, logger: logger.With(slog.String("component", "profile_service"))}
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID string) domain.UserProfile {
	return s.store.Load(ctx, userID).Value
}

// Update validates and stores profile. The premium flag cannot be changed
// here; the stored value is kept.
func (s *ProfileService) Update(ctx context.Context, userID string, profile domain.UserProfile) (domain.UserProfile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.FocusAreas != nil {
		areas := make([]string, len(profile.FocusAreas))
		for i, area := range profile.FocusAreas {
			areas[i] = strings.TrimSpace(area)
		}
		profile.FocusAreas = areas
	}
	if err := profile.Validate(); err != nil {
		return domain.UserProfile{}, err
	}

	loaded := s.store.Load(ctx, userID)
	if loaded.Unavailable() {
		return domain.UserProfile{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, loaded.Err)
	}
	profile.Premium = loaded.Value.Premium

	if err := s.store.Save(ctx, userID, profile); err != nil {
		return domain.UserProfile{}, NewServiceError("update_profile", "failed to save profile", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).InfoContext(ctx, "profile updated",
		slog.String("user_id", userID))
	return profile, nil
}
