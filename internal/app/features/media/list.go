// internal/app/features/media/list.go
package media

import (
	"context"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeByAlbum handles GET /api/media/album/{albumId}. Items come back
// in listing order: sort order ascending, then newest first.
func (h *Handler) ServeByAlbum(w http.ResponseWriter, r *http.Request) {
	albumID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "albumId"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Album ID must be a valid ID.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Albums.GetByID(ctx, albumID); err != nil {
		if err == mongo.ErrNoDocuments {
			respond.Error(w, http.StatusNotFound, "album not found")
			return
		}
		respond.Err(w, h.Log, err)
		return
	}

	items, err := h.Media.ListByAlbum(ctx, albumID)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// ServeItem handles GET /api/media/{id}.
func (h *Handler) ServeItem(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Media item ID must be a valid ID.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Media.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respond.Error(w, http.StatusNotFound, "media item not found")
			return
		}
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, item)
}
