// internal/app/features/media/handler.go
package media

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/policy/albumpolicy"
	albumstore "github.com/dalemusser/tripfolio/internal/app/store/albums"
	mediastore "github.com/dalemusser/tripfolio/internal/app/store/media"
	"github.com/dalemusser/tripfolio/internal/app/system/limits"
	"github.com/dalemusser/tripfolio/internal/app/system/uploads"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the media feature.
// Mutations go through the policy so album covers track their
// contents; plain reads use the stores directly.
type Handler struct {
	Media   *mediastore.Store
	Albums  *albumstore.Store
	Policy  *albumpolicy.Policy
	Uploads *uploads.Store
	Log     *zap.Logger
}

// NewHandler constructs a media Handler. It is called from the
// bootstrap BuildHandler function, where the application's DB, upload
// store, and logger are already initialized.
func NewHandler(db *mongo.Database, uploadStore *uploads.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Media:   mediastore.New(db),
		Albums:  albumstore.New(db),
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
