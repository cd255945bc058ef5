// internal/app/features/media/mediadelete.go
package media

import (
	"context"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /api/media/{id}. Deleting the album's
// cover photo hands the cover to the next photo, or clears it when
// none is left. The uploaded file behind a photo is removed after the
// document is gone.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Media item ID must be a valid ID.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	removed, err := h.Policy.DeleteMedia(ctx, id)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	if removed.IsPhoto() {
		if err := h.Uploads.RemoveURL(removed.Content); err != nil {
			h.Log.Warn("removing photo file",
				zap.String("url", removed.Content),
				zap.Error(err))
		}
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "media item deleted"})
}
