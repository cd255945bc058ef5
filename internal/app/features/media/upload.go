// internal/app/features/media/upload.go
package media

import (
	"net/http"

	"github.com/dalemusser/tripfolio/internal/app/system/limits"
	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"go.uber.org/zap"
)

// HandleUpload handles POST /api/media/upload: a multipart form with a
// "photo" file part. The stored file gets a collision-resistant name;
// the response carries the URL to use as a photo item's content.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxUploadFormSize)
	if err := r.ParseMultipartForm(limits.MaxUploadFormSize); err != nil {
		respond.Error(w, http.StatusBadRequest, "could not parse the upload form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "a photo file is required")
		return
	}
	defer file.Close()

	info, err := h.Uploads.Save(header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	h.Log.Info("photo uploaded",
		zap.String("file", info.Name),
		zap.Int64("size", info.Size))

	respond.JSON(w, http.StatusCreated, info)
}
