// internal/app/features/trips/tripdelete.go
package trips

import (
	"context"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /api/trips/{id}. The trip's albums and
// media items go with it; uploaded photo files are removed after the
// documents are gone.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Trip ID must be a valid ID.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	removed, err := h.Policy.DeleteTrip(ctx, id)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	h.removePhotoFiles(removed)
	h.Log.Info("trip deleted",
		zap.String("trip_id", id.Hex()),
		zap.Int("media_removed", len(removed)))

	respond.JSON(w, http.StatusOK, map[string]string{"message": "trip deleted"})
}
