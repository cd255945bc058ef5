// internal/app/features/albums/defaultalbum.go
package albums

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/policy/albumpolicy"
	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleEnsureDefault handles POST /api/albums/default/{tripId}/{itemType}/{itemId}.
// It creates the item's default album, named after the item, and wires
// the item's back-pointer. If a default already exists the response is
// a 400 carrying the existing album's ID so the client can use it.
func (h *Handler) HandleEnsureDefault(w http.ResponseWriter, r *http.Request) {
	tripID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "tripId"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Trip ID must be a valid ID.")
		return
	}
	related, err := relatedFromPath(r)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	album, err := h.Policy.EnsureDefaultAlbum(ctx, tripID, related)
	if err != nil {
		var exists *albumpolicy.DefaultExistsError
		if errors.As(err, &exists) {
			respond.JSON(w, http.StatusBadRequest, map[string]string{
				"error":    exists.Error(),
				"album_id": exists.AlbumID.Hex(),
			})
			return
		}
		respond.Err(w, h.Log, err)
		return
	}

	respond.JSON(w, http.StatusCreated, album)
}
