package api

import (
	"net/http"

	"github.com/lioapp/lio-api/internal/api/shared"
)

// AffirmationHandler serves the affirmation feed.
type AffirmationHandler struct {
	feed FeedService
}

// NewAffirmationHandler creates a new AffirmationHandler.
func NewAffirmationHandler(feed FeedService) *AffirmationHandler {
	return &AffirmationHandler{feed: feed}
}

// Batch handles POST /api/affirmations/batch. It always returns at least one
// affirmation: generation failures are answered from the fallback pool.
func (h *AffirmationHandler) Batch(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req AffirmationBatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	affirmations := h.feed.Next(r.Context(), userID, req.Count, req.Seen)
	shared.RespondWithJSON(w, r, http.StatusOK, AffirmationBatchResponse{Affirmations: affirmations})
}
