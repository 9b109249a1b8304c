package main

import (
	"net/http"
	"time"

	"github.com/lioapp/lio-api/internal/api"
	"github.com/lioapp/lio-api/internal/api/middleware"
	"github.com/lioapp/lio-api/internal/app"
)

// newRouter builds the HTTP handlers over the application's services.
func newRouter(a *app.App) http.Handler {
	handlers := api.Handlers{
		Auth:         api.NewAuthHandler(a.Tokens, a.Logger),
		Streak:       api.NewStreakHandler(a.Streaks, a.Timezones),
		Affirmations: api.NewAffirmationHandler(a.Feed),
		Profile:      api.NewProfileHandler(a.Profiles, a.Settings),
		Phrases:      api.NewPhraseHandler(a.Phrases, a.Favorites),
		Snapshot:     api.NewSnapshotHandler(a.Snapshots),
	}

	timeout := time.Duration(a.Config.Server.RequestTimeoutSeconds) * time.Second
	return api.NewRouter(handlers, middleware.NewAuthMiddleware(a.Tokens), a.Logger, timeout)
}
