package service

import (
	"context"
	"log/slog"

	"github.com/lioapp/lio-api/internal/domain"
)

// SettingsService manages notification preferences.
type SettingsService struct {
	store  SettingsStore
	logger *slog.Logger
}

// NewSettingsService creates a SettingsService. It panics if store is nil.
func NewSettingsService(store SettingsStore, logger *slog.Logger) *SettingsService {
	if store == nil {
		panic("settings store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsService{store: store, logger: logger.With(slog.String("component", "settings_service"))}
}

// Get returns the user's notification settings.
func (s *SettingsService) Get(ctx context.Context, userID string) domain.NotificationSettings {
	return s.store.Load(ctx, userID).Value
}

// Update validates and stores new settings.
func (s *SettingsService) Update(ctx context.Context, userID string, settings domain.NotificationSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.store.Save(ctx, userID, settings); err != nil {
		return NewServiceError("update_settings", "failed to save settings", err)
	}
	return nil
}
