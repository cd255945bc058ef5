// internal/app/features/albums/albumcreate.go
package albums

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/tripfolio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/tripfolio/internal/app/system/inputval"
	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/dalemusser/tripfolio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleCreate handles POST /api/albums. The policy verifies the trip
// and related item exist; a default album additionally claims the
// item's default slot or fails with Conflict if it is taken.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req albumCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if result := inputval.Validate(req); result.HasErrors() {
		respond.Error(w, http.StatusBadRequest, result.All())
		return
	}

	tripID, err := primitive.ObjectIDFromHex(req.TripID)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Trip ID must be a valid ID.")
		return
	}
	related, err := req.toRelation()
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	album := models.Album{
		Name:        strings.TrimSpace(req.Name),
		Description: htmlsanitize.Sanitize(strings.TrimSpace(req.Description)),
		TripID:      tripID,
		Related:     related,
		IsDefault:   req.IsDefault,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Policy.CreateAlbum(ctx, album)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}
