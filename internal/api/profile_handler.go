package api

import (
	"net/http"

	"github.com/lioapp/lio-api/internal/api/shared"
	"github.com/lioapp/lio-api/internal/domain"
)

// ProfileHandler serves the onboarding profile and notification settings.
type ProfileHandler struct {
	profiles ProfileService
	settings SettingsService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles ProfileService, settings SettingsService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, settings: settings}
}

// GetProfile handles GET /api/profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.profiles.Get(r.Context(), userID))
}

// UpdateProfile handles PUT /api/profile.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req ProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.profiles.Update(r.Context(), userID, req.ToDomain())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// GetNotificationSettings handles GET /api/settings/notifications.
func (h *ProfileHandler) GetNotificationSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.settings.Get(r.Context(), userID))
}

// UpdateNotificationSettings handles PUT /api/settings/notifications.
func (h *ProfileHandler) UpdateNotificationSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req NotificationSettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	settings := domain.NotificationSettings{
		Enabled:     *req.Enabled,
		Hour:        req.Hour,
		Minute:      req.Minute,
		TimesPerDay: req.TimesPerDay,
	}
	if err := h.settings.Update(r.Context(), userID, settings); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, settings)
}
