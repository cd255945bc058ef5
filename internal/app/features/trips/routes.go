// internal/app/features/trips/routes.go
package trips

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the trips endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)        // GET /api/trips
	r.Post("/", h.HandleCreate)    // POST /api/trips
	r.Get("/{id}", h.ServeTrip)    // GET /api/trips/{id}
	r.Put("/{id}", h.HandleUpdate) // PUT /api/trips/{id}
	r.Delete("/{id}", h.HandleDelete)
	return r
}
