// Package app assembles the services shared by the API server and the
// command-line tool from a loaded configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lioapp/lio-api/internal/affirmation"
	"github.com/lioapp/lio-api/internal/config"
	"github.com/lioapp/lio-api/internal/generation"
	"github.com/lioapp/lio-api/internal/platform/gemini"
	"github.com/lioapp/lio-api/internal/platform/storage"
	"github.com/lioapp/lio-api/internal/repository"
	"github.com/lioapp/lio-api/internal/service"
	"github.com/lioapp/lio-api/internal/service/auth"
	"github.com/lioapp/lio-api/internal/store"
)

// App holds the wired dependencies. Close must be called when done.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Store  store.KeyValueStore

	Tokens    auth.TokenService
	Streaks   *service.StreakEngine
	Timezones *service.TimezoneResolver
	Pipeline  *affirmation.Pipeline
	Feed      *service.FeedService
	Profiles  *service.ProfileService
	Phrases   *service.PhraseService
	Favorites *service.FavoriteService
	Settings  *service.SettingsService
	Snapshots *service.SnapshotService

	closeStore func() error
}

// New opens storage and builds every service. Without a Gemini API key
// affirmations come from the fallback pool only.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fallbackZone, err := time.LoadLocation(cfg.Server.DefaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid default timezone %q: %w", cfg.Server.DefaultTimezone, err)
	}

	tokens, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	generator, err := newGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	prompt, err := affirmation.LoadPromptTemplate(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	kv, closeStore, err := storage.Open(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	streaks := repository.NewStreakRepository(kv, logger)
	profiles := repository.NewProfileRepository(kv, logger)
	phrases := repository.NewPhrasesRepository(kv, logger)
	favorites := repository.NewFavoritesRepository(kv, logger)
	settings := repository.NewSettingsRepository(kv, logger)
	snapshots := repository.NewSnapshotRepository(kv, logger)

	clock := service.SystemClock()
	pipeline := affirmation.NewPipeline(generator, prompt, nil, logger)

	a := &App{
		Config:     cfg,
		Logger:     logger,
		Store:      kv,
		Tokens:     tokens,
		Streaks:    service.NewStreakEngine(streaks, nil, clock, logger),
		Timezones:  service.NewTimezoneResolver(profiles, fallbackZone, logger),
		Pipeline:   pipeline,
		Feed:       service.NewFeedService(pipeline, profiles, phrases, nil, logger),
		Profiles:   service.NewProfileService(profiles, logger),
		Phrases:    service.NewPhraseService(phrases, clock, logger),
		Favorites:  service.NewFavoriteService(favorites, logger),
		Settings:   service.NewSettingsService(settings, logger),
		Snapshots:  service.NewSnapshotService(snapshots, logger),
		closeStore: closeStore,
	}

	logger.InfoContext(ctx, "application initialized",
		slog.String("storage", cfg.Database.Driver),
		slog.Bool("llm_enabled", generator != nil),
		slog.String("default_timezone", fallbackZone.String()))
	return a, nil
}

// Close releases the storage connection.
func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	err := a.closeStore()
	a.closeStore = nil
	return err
}

// newGenerator returns nil when no API key is configured.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.TextGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		logger.WarnContext(ctx, "no Gemini API key configured, serving fallback affirmations only")
		return nil, nil
	}
	g, err := gemini.NewGenerator(ctx, logger.With(slog.String("component", "llm_generator")), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	return g, nil
}
