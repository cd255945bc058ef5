// internal/app/features/albums/albumedit.go
package albums

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/tripfolio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/tripfolio/internal/app/system/inputval"
	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleUpdate handles PUT /api/albums/{id}. Fields left out of the
// body keep their stored values. Setting isDefault true promotes the
// album through the policy; setting it false on the current default is
// rejected, since an item must not be left without a default.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Album ID must be a valid ID.")
		return
	}

	var req albumUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if result := inputval.Validate(req); result.HasErrors() {
		respond.Error(w, http.StatusBadRequest, result.All())
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		respond.Error(w, http.StatusBadRequest, "Album name is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
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

	if req.Name != nil || req.Description != nil {
		name := album.Name
		if req.Name != nil {
			name = strings.TrimSpace(*req.Name)
		}
		desc := album.Description
		if req.Description != nil {
			desc = htmlsanitize.Sanitize(strings.TrimSpace(*req.Description))
		}
		if err := h.Albums.UpdateInfo(ctx, id, name, desc); err != nil {
			respond.Err(w, h.Log, err)
			return
		}
	}

	if req.CoverImageID != nil {
		var coverID *primitive.ObjectID
		if trimmed := strings.TrimSpace(*req.CoverImageID); trimmed != "" {
			oid, err := primitive.ObjectIDFromHex(trimmed)
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "Cover image ID must be a valid ID.")
				return
			}
			coverID = &oid
		}
		if err := h.Policy.SetCoverExplicit(ctx, id, coverID); err != nil {
			respond.Err(w, h.Log, err)
			return
		}
	}

	if req.IsDefault != nil {
		if *req.IsDefault {
			if _, err := h.Policy.PromoteDefault(ctx, id); err != nil {
				respond.Err(w, h.Log, err)
				return
			}
		} else if album.IsDefault {
			respond.Error(w, http.StatusBadRequest,
				"cannot unset the default album; promote another album instead")
			return
		}
	}

	updated, err := h.Albums.GetByID(ctx, id)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}
