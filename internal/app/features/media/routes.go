// internal/app/features/media/routes.go
package media

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the media endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/album/{albumId}", h.ServeByAlbum)  // GET /api/media/album/{albumId}
	r.Post("/album/{albumId}", h.HandleCreate) // POST /api/media/album/{albumId}

	r.Post("/upload", h.HandleUpload)

	r.Get("/{id}", h.ServeItem)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Put("/{id}/move/{targetAlbumId}", h.HandleMove)
	return r
}
