package api

import (
	"net/http"
	"time"

	"github.com/lioapp/lio-api/internal/api/shared"
)

// StreakHandler serves the daily streak endpoints.
type StreakHandler struct {
	streaks   StreakService
	locations LocationResolver
}

// NewStreakHandler creates a new StreakHandler.
func NewStreakHandler(streaks StreakService, locations LocationResolver) *StreakHandler {
	return &StreakHandler{streaks: streaks, locations: locations}
}

// RecordInteraction handles POST /api/streak/interactions. Storage failures
// do not fail the request; the result is marked degraded instead.
func (h *StreakHandler) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	userID, loc, ok := h.userAndLocation(w, r)
	if !ok {
		return
	}
	result := h.streaks.RecordInteraction(r.Context(), userID, loc)
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Current handles GET /api/streak.
func (h *StreakHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, loc, ok := h.userAndLocation(w, r)
	if !ok {
		return
	}
	summary := h.streaks.Current(r.Context(), userID, loc)
	shared.RespondWithJSON(w, r, http.StatusOK, StreakResponse{
		Summary:  summary.Value,
		Degraded: summary.Degraded(),
	})
}

// Week handles GET /api/streak/week.
func (h *StreakHandler) Week(w http.ResponseWriter, r *http.Request) {
	userID, loc, ok := h.userAndLocation(w, r)
	if !ok {
		return
	}
	week := h.streaks.WeeklyView(r.Context(), userID, loc)
	shared.RespondWithJSON(w, r, http.StatusOK, WeekResponse{
		Days:     week.Value,
		Degraded: week.Degraded(),
	})
}

// Calendar handles GET /api/streak/calendar.
func (h *StreakHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	userID, loc, ok := h.userAndLocation(w, r)
	if !ok {
		return
	}
	calendar := h.streaks.FullCalendar(r.Context(), userID, loc)
	shared.RespondWithJSON(w, r, http.StatusOK, CalendarResponse{
		Months:   calendar.Value,
		Degraded: calendar.Degraded(),
	})
}

func (h *StreakHandler) userAndLocation(w http.ResponseWriter, r *http.Request) (string, *time.Location, bool) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return "", nil, false
	}
	return userID, h.locations.Resolve(r.Context(), userID, r.Header.Get(shared.TimezoneHeader)), true
}
