package api

import (
	"net/http"

	"github.com/lioapp/lio-api/internal/api/shared"
)

// SnapshotHandler moves all of a user's records in and out, so a device can
// upload the data it kept locally or restore it on a new phone.
type SnapshotHandler struct {
	snapshots SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshots SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// Export handles GET /api/snapshot.
func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	snapshot, err := h.snapshots.Export(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, SnapshotBody{Records: snapshot})
}

// Import handles PUT /api/snapshot. Either every record is written or none is.
func (h *SnapshotHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req SnapshotBody
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.snapshots.Import(r.Context(), userID, req.Records); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
