// internal/app/features/albums/albumview.go
package albums

import (
	"context"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/dalemusser/tripfolio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// albumResponse is an album plus its resolved cover: the explicit
// cover when set and valid, else the first photo, else the first item
// in listing order, else nothing.
type albumResponse struct {
	models.Album
	CoverImage *models.MediaItem `json:"coverImage,omitempty"`
}

// ServeAlbum handles GET /api/albums/{id}.
func (h *Handler) ServeAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Album ID must be a valid ID.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	album, err := h.Albums.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respond.Error(w, http.StatusNotFound, "album not found")
			return
		}
		respond.Err(w, h.Log, err)
		return
	}

	cover, err := h.Policy.ResolveCover(ctx, album)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	respond.JSON(w, http.StatusOK, albumResponse{Album: album, CoverImage: cover})
}
