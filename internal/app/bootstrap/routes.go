// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	albumsfeature "github.com/dalemusser/tripfolio/internal/app/features/albums"
	healthfeature "github.com/dalemusser/tripfolio/internal/app/features/health"
	mediafeature "github.com/dalemusser/tripfolio/internal/app/features/media"
	tripsfeature "github.com/dalemusser/tripfolio/internal/app/features/trips"
	"github.com/dalemusser/tripfolio/internal/app/system/uploads"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// This function should:
//  1. Create a router (chi, standard mux, etc.)
//  2. Mount feature routers for different parts of your application
//  3. Add any additional middleware needed for specific routes
//  4. Return the configured router as an http.Handler
//
// Tripfolio mounts the JSON API feature routers (trips, albums, media)
// under /api, plus the health check and static serving for uploaded
// photos.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Local photo storage shared by the features that write or delete files.
	uploadStore, err := uploads.NewLocal(appCfg.UploadDir, appCfg.UploadURLPrefix)
	if err != nil {
		logger.Error("upload store init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.TripfolioMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded photos served with pre-compressed file support (gzip/brotli)
	r.Handle(appCfg.UploadURLPrefix+"/*", fileserver.Handler(appCfg.UploadURLPrefix, uploadStore.Dir()))

	db := deps.TripfolioMongoDatabase

	// Trip CRUD, including itinerary editing and cascade deletion
	tripsHandler := tripsfeature.NewHandler(db, uploadStore, logger)
	r.Mount("/api/trips", tripsfeature.Routes(tripsHandler))

	// Albums attached to trips, segments, and stays
	albumsHandler := albumsfeature.NewHandler(db, uploadStore, logger)
	r.Mount("/api/albums", albumsfeature.Routes(albumsHandler))

	// Photos and notes inside albums, plus file uploads
	mediaHandler := mediafeature.NewHandler(db, uploadStore, logger)
	r.Mount("/api/media", mediafeature.Routes(mediaHandler))

	return r, nil
}
