// internal/app/features/albums/input.go
package albums

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/tripfolio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// relatedInput is the tagged-union part of an album request body.
type relatedInput struct {
	Type   string `json:"type" validate:"required,itemtype" label:"Item type"`
	ItemID string `json:"itemId" validate:"omitempty,objectid" label:"Item ID"`
}

// albumCreateRequest is the JSON body for POST /api/albums. A missing
// related block means a trip-level album.
type albumCreateRequest struct {
	TripID      string        `json:"tripId" validate:"required,objectid" label:"Trip ID"`
	Name        string        `json:"name" validate:"required,max=200" label:"Album name"`
	Description string        `json:"description" validate:"max=5000" label:"Description"`
	Related     *relatedInput `json:"related" label:"Related item"`
	IsDefault   bool          `json:"isDefault"`
}

// albumUpdateRequest is the JSON body for PUT /api/albums/{id}.
// Pointer fields distinguish "left out" from "set to this"; an empty
// coverImageId clears the explicit cover.
type albumUpdateRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=200" label:"Album name"`
	Description  *string `json:"description" validate:"omitempty,max=5000" label:"Description"`
	CoverImageID *string `json:"coverImageId" validate:"omitempty,objectid" label:"Cover image ID"`
	IsDefault    *bool   `json:"isDefault"`
}

// toRelation converts the request's related block, defaulting to a
// trip-level relation when the block is absent.
func (req albumCreateRequest) toRelation() (models.RelatedItem, error) {
	if req.Related == nil {
		return models.TripRelation(), nil
	}
	itemType, err := models.ParseItemType(req.Related.Type)
	if err != nil {
		return models.RelatedItem{}, err
	}
	var itemID *primitive.ObjectID
	if req.Related.ItemID != "" {
		oid, err := primitive.ObjectIDFromHex(req.Related.ItemID)
		if err != nil {
			return models.RelatedItem{}, fmt.Errorf("%w: item ID must be a valid ID", models.ErrValidation)
		}
		itemID = &oid
	}
	return models.NewRelation(itemType, itemID)
}

// relatedFromPath builds the relation named by the itemType and itemId
// URL params. Trip-level paths ignore the item ID segment.
func relatedFromPath(r *http.Request) (models.RelatedItem, error) {
	itemType, err := models.ParseItemType(chi.URLParam(r, "itemType"))
	if err != nil {
		return models.RelatedItem{}, err
	}
	if itemType == models.ItemTypeTrip {
		return models.TripRelation(), nil
	}
	itemID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "itemId"))
	if err != nil {
		return models.RelatedItem{}, fmt.Errorf("%w: item ID must be a valid ID", models.ErrValidation)
	}
	return models.NewRelation(itemType, &itemID)
}
