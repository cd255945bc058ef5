// internal/app/features/albums/albumdelete.go
package albums

import (
	"context"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /api/albums/{id}. Deleting the only
// album of a segment or stay is refused with Conflict; deleting a
// default with siblings promotes the earliest sibling. The album's
// media goes with it, and uploaded photo files are removed after the
// documents are gone.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Album ID must be a valid ID.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	removed, err := h.Policy.DeleteAlbum(ctx, id)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	h.removePhotoFiles(removed)
	h.Log.Info("album deleted",
		zap.String("album_id", id.Hex()),
		zap.Int("media_removed", len(removed)))

	respond.JSON(w, http.StatusOK, map[string]string{"message": "album deleted"})
}
