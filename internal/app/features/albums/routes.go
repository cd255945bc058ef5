// internal/app/features/albums/routes.go
package albums

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the albums endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)     // GET /api/albums
	r.Post("/", h.HandleCreate) // POST /api/albums

	r.Get("/trip/{tripId}", h.ServeByTrip)
	r.Get("/trip/{tripId}/{itemType}/{itemId}", h.ServeByRelated)

	r.Post("/default/{tripId}/{itemType}/{itemId}", h.HandleEnsureDefault)

	r.Get("/{id}", h.ServeAlbum)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
