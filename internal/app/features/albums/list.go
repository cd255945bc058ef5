// internal/app/features/albums/list.go
package albums

import (
	"context"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET /api/albums. Albums come back in creation
// order across all trips.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := h.Albums.List(ctx)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeByTrip handles GET /api/albums/trip/{tripId}: every album of
// the trip, whatever it is related to.
func (h *Handler) ServeByTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "tripId"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Trip ID must be a valid ID.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := h.Albums.ListByTrip(ctx, tripID)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeByRelated handles GET /api/albums/trip/{tripId}/{itemType}/{itemId}:
// the albums of one segment, stay, or the trip itself.
func (h *Handler) ServeByRelated(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := h.Albums.ListByRelated(ctx, tripID, related)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}
