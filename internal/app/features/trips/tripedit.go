// internal/app/features/trips/tripedit.go
package trips

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

// HandleUpdate handles PUT /api/trips/{id}. Fields left out of the
// body keep their stored values; the date range is rederived from the
// resulting itinerary. Segments and stays that keep their IDs across
// the edit also keep their default-album back-pointers.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Trip ID must be a valid ID.")
		return
	}

	var req tripUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if result := inputval.Validate(req); result.HasErrors() {
		respond.Error(w, http.StatusBadRequest, result.All())
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		respond.Error(w, http.StatusBadRequest, "Trip name is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Trips.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respond.Error(w, http.StatusNotFound, "trip not found")
			return
		}
		respond.Err(w, h.Log, err)
		return
	}

	merged := existing
	if req.Name != nil {
		merged.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		merged.Description = htmlsanitize.Sanitize(strings.TrimSpace(*req.Description))
	}
	if req.CoverImage != nil {
		merged.CoverImage = strings.TrimSpace(*req.CoverImage)
	}
	if req.Segments != nil {
		merged.Segments = segmentsToModels(&existing, req.Segments)
	}
	if req.Stays != nil {
		merged.Stays = staysToModels(&existing, req.Stays)
	}

	updated, err := h.Trips.Update(ctx, id, merged)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respond.Error(w, http.StatusNotFound, "trip not found")
			return
		}
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}
