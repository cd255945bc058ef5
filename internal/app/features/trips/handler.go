// internal/app/features/trips/handler.go
package trips

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/policy/albumpolicy"
	tripstore "github.com/dalemusser/tripfolio/internal/app/store/trips"
	"github.com/dalemusser/tripfolio/internal/app/system/limits"
	"github.com/dalemusser/tripfolio/internal/app/system/uploads"
	"github.com/dalemusser/tripfolio/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the trips feature.
// Deleting a trip cascades through albums and media, so the handler
// carries the album policy and the upload store for file cleanup in
// addition to the trip store.
type Handler struct {
	Trips   *tripstore.Store
	Policy  *albumpolicy.Policy
	Uploads *uploads.Store
	Log     *zap.Logger
}

// NewHandler constructs a trips Handler. It is called from the
// bootstrap BuildHandler function, where the application's DB, upload
// store, and logger are already initialized.
func NewHandler(db *mongo.Database, uploadStore *uploads.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Trips:   tripstore.New(db),
		Policy:  albumpolicy.New(db, logger),
		Uploads: uploadStore,
		Log:     logger,
	}
}

// decodeJSON reads the request body into dst, capping the body at the
// JSON size limit.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)
	return json.NewDecoder(r.Body).Decode(dst)
}

// removePhotoFiles deletes the uploaded files behind cascaded media
// items. The documents are already gone, so a failed removal is only
// logged.
func (h *Handler) removePhotoFiles(items []models.MediaItem) {
	for _, item := range items {
		if !item.IsPhoto() {
			continue
		}
		if err := h.Uploads.RemoveURL(item.Content); err != nil {
			h.Log.Warn("removing photo file",
				zap.String("url", item.Content),
				zap.Error(err))
		}
	}
}
