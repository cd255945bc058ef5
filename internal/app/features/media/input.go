// internal/app/features/media/input.go
package media

import (
	"strings"

	"github.com/dalemusser/tripfolio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/tripfolio/internal/domain/models"
)

// mediaCreateRequest is the JSON body for POST /api/media/album/{albumId}.
// Content is the photo URL for photos and the text for notes.
type mediaCreateRequest struct {
	Type      string            `json:"type" validate:"required,mediatype" label:"Media type"`
	Content   string            `json:"content" validate:"required,max=10000" label:"Content"`
	Caption   string            `json:"caption" validate:"max=500" label:"Caption"`
	Metadata  map[string]string `json:"metadata" label:"Metadata"`
	SortOrder int               `json:"sortOrder" label:"Sort order"`
}

// mediaUpdateRequest is the JSON body for PUT /api/media/{id}. Pointer
// fields distinguish "left out" from "set to this"; a non-nil Metadata
// replaces the stored map wholesale.
type mediaUpdateRequest struct {
	Type      *string           `json:"type" validate:"omitempty,mediatype" label:"Media type"`
	Content   *string           `json:"content" validate:"omitempty,max=10000" label:"Content"`
	Caption   *string           `json:"caption" validate:"omitempty,max=500" label:"Caption"`
	Metadata  map[string]string `json:"metadata" label:"Metadata"`
	SortOrder *int              `json:"sortOrder" label:"Sort order"`
}

// cleanContent normalizes content for storage: note text is sanitized
// as rich text, photo URLs are only trimmed so their characters stay
// intact.
func cleanContent(mediaType, content string) string {
	content = strings.TrimSpace(content)
	if mediaType == models.MediaTypeNote {
		return htmlsanitize.Sanitize(content)
	}
	return content
}

// cleanCaption strips markup from a caption.
func cleanCaption(caption string) string {
	return htmlsanitize.StripTags(strings.TrimSpace(caption))
}
