// Package respond writes JSON responses and maps domain errors to
// HTTP statuses.
//
// Handlers return early through one of the helpers; classification of
// store and policy errors lives in Err so every feature maps the
// sentinels the same way:
//
//	models.ErrNotFound   -> 404
//	models.ErrValidation -> 400
//	models.ErrConflict   -> 400
//	anything else        -> 500 with a generic body
//
// Internal error detail is only included in the body when dev mode is
// on (Configure); production responses stay generic and the detail
// goes to the log instead.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/dalemusser/tripfolio/internal/domain/models"
)

var (
	mu  sync.RWMutex
	dev bool
)

// Configure sets dev mode. Call once during startup.
func Configure(devMode bool) {
	mu.Lock()
	defer mu.Unlock()
	dev = devMode
}

func devEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return dev
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// Err classifies err against the domain sentinels and writes the
// mapped response. Unclassified errors are logged and answered with a
// generic 500; in dev mode the body carries the detail too.
func Err(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrConflict):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		if log != nil {
			log.Error("internal error", zap.Error(err))
		}
		if devEnabled() {
			JSON(w, http.StatusInternalServerError, map[string]string{
				"error":  "internal server error",
				"detail": err.Error(),
			})
			return
		}
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}
