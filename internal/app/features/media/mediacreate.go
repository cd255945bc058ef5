// internal/app/features/media/mediacreate.go
package media

import (
	"context"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/system/inputval"
	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/dalemusser/tripfolio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleCreate handles POST /api/media/album/{albumId}. A photo added
// to an album with no cover becomes its cover.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	albumID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "albumId"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Album ID must be a valid ID.")
		return
	}

	var req mediaCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if result := inputval.Validate(req); result.HasErrors() {
		respond.Error(w, http.StatusBadRequest, result.All())
		return
	}

	item := models.MediaItem{
		AlbumID:   albumID,
		Type:      req.Type,
		Content:   cleanContent(req.Type, req.Content),
		Caption:   cleanCaption(req.Caption),
		Metadata:  req.Metadata,
		SortOrder: req.SortOrder,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Policy.CreateMedia(ctx, item)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}
