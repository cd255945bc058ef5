// internal/domain/models/trip.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip is the aggregate root of an itinerary. Segments and stays are
// embedded: they live and die with the trip document and their IDs are
// only meaningful inside it.
//
// StartDate, EndDate, and DateRange are derived fields. They are
// recomputed from the embedded segments and stays on every save; client
// supplied values for them are ignored.
type Trip struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CoverImage  string             `bson:"cover_image,omitempty" json:"coverImage,omitempty"`

	StartDate *time.Time `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
	DateRange string     `bson:"date_range,omitempty" json:"dateRange,omitempty"`

	Segments []Segment `bson:"segments" json:"segments"`
	Stays    []Stay    `bson:"stays" json:"stays"`

	// DefaultAlbumID points at the trip-level default album. It is a
	// non-owning back-pointer maintained by the album policy; the album
	// document's is_default flag is the source of truth.
	DefaultAlbumID *primitive.ObjectID `bson:"default_album_id,omitempty" json:"defaultAlbumId,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Canonical segment transport modes stored in Segment.Type.
const (
	SegmentTypeFlight  = "flight"
	SegmentTypeTrain   = "train"
	SegmentTypeShuttle = "shuttle"
	SegmentTypeWalk    = "walk"
	SegmentTypeBus     = "bus"
)

// SegmentTypes is the full set of allowed segment transport modes. Treat
// this slice as the single source of truth for validation.
var SegmentTypes = []string{
	SegmentTypeFlight,
	SegmentTypeTrain,
	SegmentTypeShuttle,
	SegmentTypeWalk,
	SegmentTypeBus,
}

// IsValidSegmentType checks if a value is an allowed transport mode.
func IsValidSegmentType(value string) bool {
	for _, t := range SegmentTypes {
		if t == value {
			return true
		}
	}
	return false
}

// Segment is one transport leg of a trip (flight, train, and so on).
type Segment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Date      time.Time          `bson:"date" json:"date"`
	Type      string             `bson:"type" json:"type"`
	Transport string             `bson:"transport" json:"transport"`
	From      Point              `bson:"from" json:"from"`
	To        Point              `bson:"to" json:"to"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`

	DefaultAlbumID *primitive.ObjectID `bson:"default_album_id,omitempty" json:"defaultAlbumId,omitempty"`
}

// Point is a named location endpoint of a segment. Coordinates is
// always [lat, lng]; the fixed-size array makes the two-element rule a
// type-level guarantee instead of a runtime check.
type Point struct {
	Name        string     `bson:"name" json:"name"`
	Code        string     `bson:"code,omitempty" json:"code,omitempty"`
	Coordinates [2]float64 `bson:"coordinates" json:"coordinates"`
}

// Stay is a lodging entry of a trip.
type Stay struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Location    string             `bson:"location" json:"location"`
	Coordinates [2]float64         `bson:"coordinates" json:"coordinates"`
	StartDate   time.Time          `bson:"start_date" json:"startDate"`
	EndDate     time.Time          `bson:"end_date" json:"endDate"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Amenities   []string           `bson:"amenities,omitempty" json:"amenities,omitempty"`

	DefaultAlbumID *primitive.ObjectID `bson:"default_album_id,omitempty" json:"defaultAlbumId,omitempty"`
}

// EnsureEmbeddedIDs assigns fresh ObjectIDs to segments and stays that
// do not have one yet. Existing IDs are kept so albums related to an
// item survive trip edits.
func (t *Trip) EnsureEmbeddedIDs() {
	for i := range t.Segments {
		if t.Segments[i].ID.IsZero() {
			t.Segments[i].ID = primitive.NewObjectID()
		}
	}
	for i := range t.Stays {
		if t.Stays[i].ID.IsZero() {
			t.Stays[i].ID = primitive.NewObjectID()
		}
	}
}

// SegmentByID returns the embedded segment with the given ID, or nil.
func (t *Trip) SegmentByID(id primitive.ObjectID) *Segment {
	for i := range t.Segments {
		if t.Segments[i].ID == id {
			return &t.Segments[i]
		}
	}
	return nil
}

// StayByID returns the embedded stay with the given ID, or nil.
func (t *Trip) StayByID(id primitive.ObjectID) *Stay {
	for i := range t.Stays {
		if t.Stays[i].ID == id {
			return &t.Stays[i]
		}
	}
	return nil
}

// RecomputeDateRange derives StartDate, EndDate, and DateRange from the
// embedded segments and stays: the minimum and maximum over all segment
// dates and stay start/end dates. A trip with no dated items gets all
// three fields unset.
func (t *Trip) RecomputeDateRange() {
	var dates []time.Time
	for _, s := range t.Segments {
		dates = append(dates, s.Date)
	}
	for _, s := range t.Stays {
		dates = append(dates, s.StartDate, s.EndDate)
	}
	if len(dates) == 0 {
		t.StartDate = nil
		t.EndDate = nil
		t.DateRange = ""
		return
	}

	start, end := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(start) {
			start = d
		}
		if d.After(end) {
			end = d
		}
	}
	t.StartDate = &start
	t.EndDate = &end
	t.DateRange = FormatDateRange(start, end)
}

// FormatDateRange renders a trip date span for display, for example
// "Feb 16 - Feb 17, 2025". The year is taken from the end date. Dates
// are rendered in UTC so the string does not depend on where the
// process runs (the Mongo driver decodes datetimes into local time).
func FormatDateRange(start, end time.Time) string {
	return start.UTC().Format("Jan 2") + " - " + end.UTC().Format("Jan 2, 2006")
}
