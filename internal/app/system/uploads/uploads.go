// Package uploads stores uploaded photo files and hands back the
// public URL they are served under.
//
// The backing filesystem is an afero.Fs so tests run against an
// in-memory filesystem; production uses the OS filesystem rooted at
// the configured upload directory, which bootstrap serves statically
// under the URL prefix.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/dalemusser/tripfolio/internal/app/system/limits"
	"github.com/dalemusser/tripfolio/internal/domain/models"
)

// Store writes, serves, and deletes uploaded photos.
type Store struct {
	fs        afero.Fs
	dir       string
	urlPrefix string
}

// UploadInfo contains metadata about a stored upload.
type UploadInfo struct {
	Name string `json:"fileName"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// New builds a Store over fs, creating dir if needed. urlPrefix is the
// public path uploads are served under, e.g. "/uploads".
func New(fs afero.Fs, dir, urlPrefix string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %q: %w", dir, err)
	}
	if !strings.HasPrefix(urlPrefix, "/") {
		urlPrefix = "/" + urlPrefix
	}
	return &Store{fs: fs, dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// NewLocal builds a Store on the OS filesystem.
func NewLocal(dir, urlPrefix string) (*Store, error) {
	return New(afero.NewOsFs(), dir, urlPrefix)
}

// Save stores one photo and returns its name, URL, and size. Only
// image content types are accepted, and files over the upload limit
// are rejected with nothing left behind.
//
// Stored names are collision-resistant: photo-<unix ms>-<random>.<ext>
// with the extension taken from the original filename.
func (s *Store) Save(originalName, contentType string, r io.Reader) (UploadInfo, error) {
	if !isImageContentType(contentType) {
		return UploadInfo{}, fmt.Errorf("%w: only image uploads are allowed, got %q", models.ErrValidation, contentType)
	}

	name := fmt.Sprintf("photo-%d-%s%s",
		time.Now().UnixMilli(),
		uuid.New().String()[:8],
		extensionFor(originalName, contentType),
	)
	full := filepath.Join(s.dir, name)

	f, err := s.fs.Create(full)
	if err != nil {
		return UploadInfo{}, fmt.Errorf("creating upload file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(r, limits.MaxUploadBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.fs.Remove(full)
		return UploadInfo{}, fmt.Errorf("writing upload file: %w", err)
	}
	if written > limits.MaxUploadBytes {
		_ = s.fs.Remove(full)
		return UploadInfo{}, fmt.Errorf("%w: photo exceeds the %d MiB upload limit",
			models.ErrValidation, limits.MaxUploadBytes>>20)
	}

	return UploadInfo{Name: name, URL: s.URL(name), Size: written}, nil
}

// URL returns the public URL for a stored name.
func (s *Store) URL(name string) string {
	return path.Join(s.urlPrefix, filepath.Base(name))
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Remove deletes a stored file. A file that is already gone is not an
// error; deletes stay idempotent.
func (s *Store) Remove(name string) error {
	err := s.fs.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// RemoveURL deletes the file a public URL points at. URLs outside the
// store's prefix (external photos) are ignored.
func (s *Store) RemoveURL(url string) error {
	if !strings.HasPrefix(url, s.urlPrefix+"/") {
		return nil
	}
	return s.Remove(strings.TrimPrefix(url, s.urlPrefix+"/"))
}

// isImageContentType accepts image/* media types, with any parameters
// stripped first.
func isImageContentType(ct string) bool {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "image/")
}

// extensionFor picks the stored extension: the sanitized extension of
// the original name when it has one, else one derived from the content
// type.
func extensionFor(originalName, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if ext != "" && len(ext) <= 10 && isSafeExtension(ext) {
		return ext
	}
	switch mt, _, _ := mime.ParseMediaType(contentType); mt {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

func isSafeExtension(ext string) bool {
	for i := 1; i < len(ext); i++ {
		c := ext[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return len(ext) > 1
}
