package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/lioapp/lio-api/internal/api/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Streak       *StreakHandler
	Affirmations *AffirmationHandler
	Profile      *ProfileHandler
	Phrases      *PhraseHandler
	Snapshot     *SnapshotHandler
}

// NewRouter creates the application router. Every route under /api except
// device registration and token refresh requires an access token.
// A zero requestTimeout disables the per-request deadline.
func NewRouter(
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	logger *slog.Logger,
	requestTimeout time.Duration,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.NewTraceMiddleware(logger))
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	if requestTimeout > 0 {
		r.Use(chimw.Timeout(requestTimeout))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/device", h.Auth.RegisterDevice)
		r.Post("/auth/refresh", h.Auth.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Route("/streak", func(r chi.Router) {
				r.Get("/", h.Streak.Current)
				r.Post("/interactions", h.Streak.RecordInteraction)
				r.Get("/week", h.Streak.Week)
				r.Get("/calendar", h.Streak.Calendar)
			})

			r.Post("/affirmations/batch", h.Affirmations.Batch)

			r.Get("/profile", h.Profile.GetProfile)
			r.Put("/profile", h.Profile.UpdateProfile)
			r.Get("/settings/notifications", h.Profile.GetNotificationSettings)
			r.Put("/settings/notifications", h.Profile.UpdateNotificationSettings)

			r.Route("/phrases", func(r chi.Router) {
				r.Get("/", h.Phrases.ListPhrases)
				r.Post("/", h.Phrases.AddPhrase)
				r.Get("/enabled", h.Phrases.GetPhrasesEnabled)
				r.Put("/enabled", h.Phrases.SetPhrasesEnabled)
				r.Delete("/{id}", h.Phrases.DeletePhrase)
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", h.Phrases.ListFavorites)
				r.Post("/", h.Phrases.AddFavorite)
				r.Delete("/{id}", h.Phrases.RemoveFavorite)
			})

			r.Get("/snapshot", h.Snapshot.Export)
			r.Put("/snapshot", h.Snapshot.Import)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Default().Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})

	return r
}
