// internal/app/features/media/mediamove.go
package media

import (
	"context"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleMove handles PUT /api/media/{id}/move/{targetAlbumId}. Both
// albums re-resolve their covers: the source loses the item, and the
// target adopts a moved photo if it had no cover.
func (h *Handler) HandleMove(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Media item ID must be a valid ID.")
		return
	}
	targetID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "targetAlbumId"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Target album ID must be a valid ID.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	moved, err := h.Policy.MoveMedia(ctx, id, targetID)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, moved)
}
