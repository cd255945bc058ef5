// internal/domain/models/mediaitem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Canonical media types stored in MediaItem.Type.
const (
	MediaTypePhoto = "photo"
	MediaTypeNote  = "note"
)

// MediaTypes is the full set of allowed media types.
var MediaTypes = []string{MediaTypePhoto, MediaTypeNote}

// IsValidMediaType checks if a value is an allowed media type.
func IsValidMediaType(value string) bool {
	for _, t := range MediaTypes {
		if t == value {
			return true
		}
	}
	return false
}

// MediaItem is a single photo or note inside an album. Each item
// belongs to exactly one album; moving an item re-targets AlbumID
// rather than copying the document.
//
// Content holds the uploaded file's public URL for photos and the text
// body for notes. Album listings order by SortOrder ascending, breaking
// ties by CreatedAt descending (newest first) and then ID.
type MediaItem struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	AlbumID primitive.ObjectID `bson:"album_id" json:"albumId"`
	Type    string             `bson:"type" json:"type"`
	Content string             `bson:"content" json:"content"`
	Caption string             `bson:"caption,omitempty" json:"caption,omitempty"`

	Metadata  map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	SortOrder int               `bson:"sort_order" json:"sortOrder"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// IsPhoto reports whether the item is a photo.
func (m *MediaItem) IsPhoto() bool {
	return m.Type == MediaTypePhoto
}
