// internal/app/features/trips/tripcreate.go
package trips

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/tripfolio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/tripfolio/internal/app/system/inputval"
	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/dalemusser/tripfolio/internal/domain/models"
)

// HandleCreate handles POST /api/trips. The trip's date range is
// derived from the submitted segments and stays on save.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tripCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if result := inputval.Validate(req); result.HasErrors() {
		respond.Error(w, http.StatusBadRequest, result.All())
		return
	}

	trip := models.Trip{
		Name:        strings.TrimSpace(req.Name),
		Description: htmlsanitize.Sanitize(strings.TrimSpace(req.Description)),
		CoverImage:  strings.TrimSpace(req.CoverImage),
		Segments:    segmentsToModels(nil, req.Segments),
		Stays:       staysToModels(nil, req.Stays),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Trips.Create(ctx, trip)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}
