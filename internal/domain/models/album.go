// internal/domain/models/album.go
package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemType identifies what an album is attached to: the trip as a
// whole, or one of its embedded segments or stays.
type ItemType string

const (
	ItemTypeTrip    ItemType = "trip"
	ItemTypeSegment ItemType = "segment"
	ItemTypeStay    ItemType = "stay"
)

// ItemTypes is the full set of allowed item types.
var ItemTypes = []ItemType{ItemTypeTrip, ItemTypeSegment, ItemTypeStay}

// ParseItemType converts a path or payload string into an ItemType.
func ParseItemType(value string) (ItemType, error) {
	for _, t := range ItemTypes {
		if string(t) == value {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: invalid item type %q", ErrValidation, value)
}

// RelatedItem is the tagged union identifying an album's subject.
// Trip-level relations carry no item ID; segment and stay relations
// must carry the embedded item's ID. Build values through the
// constructors below so the pairing rule holds from the start.
type RelatedItem struct {
	Type   ItemType            `bson:"type" json:"type"`
	ItemID *primitive.ObjectID `bson:"item_id,omitempty" json:"itemId,omitempty"`
}

// TripRelation returns the trip-level relation.
func TripRelation() RelatedItem {
	return RelatedItem{Type: ItemTypeTrip}
}

// SegmentRelation returns a relation to the segment with the given ID.
func SegmentRelation(id primitive.ObjectID) RelatedItem {
	return RelatedItem{Type: ItemTypeSegment, ItemID: &id}
}

// StayRelation returns a relation to the stay with the given ID.
func StayRelation(id primitive.ObjectID) RelatedItem {
	return RelatedItem{Type: ItemTypeStay, ItemID: &id}
}

// NewRelation builds a RelatedItem from loosely typed input, enforcing
// the same pairing rule as the constructors: segment and stay relations
// need an item ID, trip relations must not carry one.
func NewRelation(itemType ItemType, itemID *primitive.ObjectID) (RelatedItem, error) {
	switch itemType {
	case ItemTypeTrip:
		if itemID != nil && !itemID.IsZero() {
			return RelatedItem{}, fmt.Errorf("%w: trip-level albums do not take an item id", ErrValidation)
		}
		return TripRelation(), nil
	case ItemTypeSegment:
		if itemID == nil || itemID.IsZero() {
			return RelatedItem{}, fmt.Errorf("%w: segment albums require an item id", ErrValidation)
		}
		return SegmentRelation(*itemID), nil
	case ItemTypeStay:
		if itemID == nil || itemID.IsZero() {
			return RelatedItem{}, fmt.Errorf("%w: stay albums require an item id", ErrValidation)
		}
		return StayRelation(*itemID), nil
	default:
		return RelatedItem{}, fmt.Errorf("%w: invalid item type %q", ErrValidation, itemType)
	}
}

// Validate re-checks the pairing rule, for values decoded from the
// database or a request body rather than built via a constructor.
func (r RelatedItem) Validate() error {
	_, err := NewRelation(r.Type, r.ItemID)
	return err
}

// IsTripLevel reports whether the relation targets the trip itself.
func (r RelatedItem) IsTripLevel() bool {
	return r.Type == ItemTypeTrip
}

// Album groups media items under a trip, a segment, or a stay.
//
// Invariants maintained by the album policy:
//   - TripID always names an existing trip, and for segment/stay
//     relations the item exists inside that trip.
//   - At most one album per related item has IsDefault set; the item's
//     default_album_id back-pointer names that album.
//   - CoverImageID, when set, names a photo item owned by this album.
type Album struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	TripID      primitive.ObjectID `bson:"trip_id" json:"tripId"`
	Related     RelatedItem        `bson:"related" json:"related"`

	CoverImageID *primitive.ObjectID `bson:"cover_image_id,omitempty" json:"coverImageId,omitempty"`
	IsDefault    bool                `bson:"is_default" json:"isDefault"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// DefaultAlbumName builds the name given to an auto-created default
// album, for example "Grand Hotel Album".
func DefaultAlbumName(itemLabel string) string {
	return itemLabel + " Album"
}
