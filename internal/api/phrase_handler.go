package api

import (
	"net/http"

	"github.com/lioapp/lio-api/internal/api/shared"
	"github.com/lioapp/lio-api/internal/domain"
)

// PhraseHandler serves custom phrases and favorites.
type PhraseHandler struct {
	phrases   PhraseService
	favorites FavoriteService
}

// NewPhraseHandler creates a new PhraseHandler.
func NewPhraseHandler(phrases PhraseService, favorites FavoriteService) *PhraseHandler {
	return &PhraseHandler{phrases: phrases, favorites: favorites}
}

// ListPhrases handles GET /api/phrases.
func (h *PhraseHandler) ListPhrases(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	phrases := h.phrases.List(r.Context(), userID)
	if phrases == nil {
		phrases = []domain.CustomPhrase{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, phrases)
}

// AddPhrase handles POST /api/phrases.
func (h *PhraseHandler) AddPhrase(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req PhraseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	phrase, err := h.phrases.Add(r.Context(), userID, req.Text)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, phrase)
}

// DeletePhrase handles DELETE /api/phrases/{id}.
func (h *PhraseHandler) DeletePhrase(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.phrases.Delete(r.Context(), userID, id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// GetPhrasesEnabled handles GET /api/phrases/enabled.
func (h *PhraseHandler) GetPhrasesEnabled(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, PhrasesEnabledResponse{
		Enabled: h.phrases.Enabled(r.Context(), userID),
	})
}

// SetPhrasesEnabled handles PUT /api/phrases/enabled.
func (h *PhraseHandler) SetPhrasesEnabled(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req PhrasesEnabledRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.phrases.SetEnabled(r.Context(), userID, *req.Enabled); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, PhrasesEnabledResponse{Enabled: *req.Enabled})
}

// ListFavorites handles GET /api/favorites.
func (h *PhraseHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	favorites := h.favorites.List(r.Context(), userID)
	if favorites == nil {
		favorites = []domain.Affirmation{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, favorites)
}

// AddFavorite handles POST /api/favorites. It returns the updated list.
func (h *PhraseHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req FavoriteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	favorites, err := h.favorites.Add(r.Context(), userID, domain.Affirmation{
		ID:       req.ID,
		Text:     req.Text,
		Category: req.Category,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, favorites)
}

// RemoveFavorite handles DELETE /api/favorites/{id}.
func (h *PhraseHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.favorites.Remove(r.Context(), userID, id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
