// internal/app/features/media/mediaedit.go
package media

import (
	"context"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/system/inputval"
	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleUpdate handles PUT /api/media/{id}. Fields left out of the
// body keep their stored values. Changing an item's type runs the
// cover rules: an album whose cover stops being a photo falls back to
// the next one.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Media item ID must be a valid ID.")
		return
	}

	var req mediaUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if result := inputval.Validate(req); result.HasErrors() {
		respond.Error(w, http.StatusBadRequest, result.All())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Media.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respond.Error(w, http.StatusNotFound, "media item not found")
			return
		}
		respond.Err(w, h.Log, err)
		return
	}

	mut := existing
	if req.Type != nil {
		mut.Type = *req.Type
	}
	if req.Content != nil {
		mut.Content = cleanContent(mut.Type, *req.Content)
	}
	if req.Caption != nil {
		mut.Caption = cleanCaption(*req.Caption)
	}
	if req.Metadata != nil {
		mut.Metadata = req.Metadata
	}
	if req.SortOrder != nil {
		mut.SortOrder = *req.SortOrder
	}

	updated, err := h.Policy.UpdateMedia(ctx, id, mut)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}
