// internal/app/features/trips/input.go
package trips

import (
	"strings"
	"time"

	"github.com/dalemusser/tripfolio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/tripfolio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pointInput is one endpoint of a segment in a request body.
type pointInput struct {
	Name        string    `json:"name" validate:"required,max=200" label:"Point name"`
	Code        string    `json:"code" validate:"max=10" label:"Point code"`
	Coordinates []float64 `json:"coordinates" validate:"coords" label:"Point coordinates"`
}

// segmentInput is one transport leg in a request body. An ID is only
// present when the client is editing an existing segment; new segments
// get their ID on save.
type segmentInput struct {
	ID        string     `json:"id" validate:"omitempty,objectid" label:"Segment ID"`
	Date      time.Time  `json:"date" validate:"required" label:"Segment date"`
	Type      string     `json:"type" validate:"required,segmenttype" label:"Segment type"`
	Transport string     `json:"transport" validate:"max=200" label:"Transport"`
	From      pointInput `json:"from" label:"Origin"`
	To        pointInput `json:"to" label:"Destination"`
	Notes     string     `json:"notes" validate:"max=5000" label:"Segment notes"`
}

// stayInput is one lodging entry in a request body.
type stayInput struct {
	ID          string    `json:"id" validate:"omitempty,objectid" label:"Stay ID"`
	Location    string    `json:"location" validate:"required,max=200" label:"Stay location"`
	Coordinates []float64 `json:"coordinates" validate:"coords" label:"Stay coordinates"`
	StartDate   time.Time `json:"startDate" validate:"required" label:"Stay start date"`
	EndDate     time.Time `json:"endDate" validate:"required" label:"Stay end date"`
	Notes       string    `json:"notes" validate:"max=5000" label:"Stay notes"`
	Amenities   []string  `json:"amenities" label:"Amenities"`
}

// tripCreateRequest is the JSON body for POST /api/trips. Trip dates
// are never accepted from the client; they are derived from the
// itinerary on save.
type tripCreateRequest struct {
	Name        string         `json:"name" validate:"required,max=200" label:"Trip name"`
	Description string         `json:"description" validate:"max=5000" label:"Description"`
	CoverImage  string         `json:"coverImage" validate:"max=500" label:"Cover image"`
	Segments    []segmentInput `json:"segments" validate:"dive" label:"Segments"`
	Stays       []stayInput    `json:"stays" validate:"dive" label:"Stays"`
}

// tripUpdateRequest is the JSON body for PUT /api/trips/{id}. Pointer
// fields distinguish "left out, keep the stored value" from "set to
// this"; a nil Segments or Stays slice likewise keeps the stored
// itinerary while an empty one clears it.
type tripUpdateRequest struct {
	Name        *string        `json:"name" validate:"omitempty,max=200" label:"Trip name"`
	Description *string        `json:"description" validate:"omitempty,max=5000" label:"Description"`
	CoverImage  *string        `json:"coverImage" validate:"omitempty,max=500" label:"Cover image"`
	Segments    []segmentInput `json:"segments" validate:"dive" label:"Segments"`
	Stays       []stayInput    `json:"stays" validate:"dive" label:"Stays"`
}

// toModel converts a validated point input.
func (in pointInput) toModel() models.Point {
	p := models.Point{
		Name: strings.TrimSpace(in.Name),
		Code: strings.ToUpper(strings.TrimSpace(in.Code)),
	}
	if len(in.Coordinates) == 2 {
		p.Coordinates = [2]float64{in.Coordinates[0], in.Coordinates[1]}
	}
	return p
}

// toModel converts a validated segment input. Validation has already
// confirmed the ID, so a parse failure here just leaves it zero for
// the store to assign.
func (in segmentInput) toModel() models.Segment {
	s := models.Segment{
		Date:      in.Date,
		Type:      in.Type,
		Transport: strings.TrimSpace(in.Transport),
		From:      in.From.toModel(),
		To:        in.To.toModel(),
		Notes:     htmlsanitize.Sanitize(strings.TrimSpace(in.Notes)),
	}
	if id, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.ID)); err == nil {
		s.ID = id
	}
	return s
}

// toModel converts a validated stay input.
func (in stayInput) toModel() models.Stay {
	s := models.Stay{
		Location:  strings.TrimSpace(in.Location),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Notes:     htmlsanitize.Sanitize(strings.TrimSpace(in.Notes)),
		Amenities: in.Amenities,
	}
	if len(in.Coordinates) == 2 {
		s.Coordinates = [2]float64{in.Coordinates[0], in.Coordinates[1]}
	}
	if id, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.ID)); err == nil {
		s.ID = id
	}
	return s
}

// segmentsToModels converts a slice of segment inputs, carrying over
// the default-album back-pointer for segments that already exist on
// the trip. Clients do not round-trip defaultAlbumId, so an edit must
// not wipe it.
func segmentsToModels(existing *models.Trip, inputs []segmentInput) []models.Segment {
	out := make([]models.Segment, 0, len(inputs))
	for _, in := range inputs {
		seg := in.toModel()
		if existing != nil && !seg.ID.IsZero() {
			if prev := existing.SegmentByID(seg.ID); prev != nil {
				seg.DefaultAlbumID = prev.DefaultAlbumID
			}
		}
		out = append(out, seg)
	}
	return out
}

// staysToModels converts a slice of stay inputs, carrying over the
// default-album back-pointer for stays that already exist on the trip.
func staysToModels(existing *models.Trip, inputs []stayInput) []models.Stay {
	out := make([]models.Stay, 0, len(inputs))
	for _, in := range inputs {
		stay := in.toModel()
		if existing != nil && !stay.ID.IsZero() {
			if prev := existing.StayByID(stay.ID); prev != nil {
				stay.DefaultAlbumID = prev.DefaultAlbumID
			}
		}
		out = append(out, stay)
	}
	return out
}
