// internal/app/system/limits/limits.go
package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBodySize is the maximum size for JSON request bodies.
	MaxJSONBodySize = 1 << 20 // 1 MB

	// MaxUploadBytes is the maximum size for a single uploaded photo.
	// The multipart form parser and the upload store both enforce it.
	MaxUploadBytes = 5 << 20 // 5 MiB

	// MaxUploadFormSize is the memory ceiling handed to
	// ParseMultipartForm for upload requests; larger parts spill to
	// temporary files.
	MaxUploadFormSize = MaxUploadBytes + (1 << 20)
)
