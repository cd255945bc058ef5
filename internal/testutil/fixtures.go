package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/tripfolio/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateTrip creates a test trip with the given name and no itinerary.
// Returns the created trip with its generated ID.
func (f *Fixtures) CreateTrip(ctx context.Context, name string) models.Trip {
	f.t.Helper()

	now := time.Now().UTC()
	trip := models.Trip{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Segments:  []models.Segment{},
		Stays:     []models.Stay{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("trips").InsertOne(ctx, trip)
	if err != nil {
		f.t.Fatalf("failed to create test trip: %v", err)
	}

	return trip
}

// CreateTripWithItinerary creates a test trip holding one flight
// segment on 2025-02-16 and one stay from 2025-02-16 to 2025-02-17,
// with the derived date fields filled in.
func (f *Fixtures) CreateTripWithItinerary(ctx context.Context, name string) models.Trip {
	f.t.Helper()

	day1 := time.Date(2025, 2, 16, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	trip := models.Trip{
		ID:   primitive.NewObjectID(),
		Name: name,
		Segments: []models.Segment{
			{
				ID:        primitive.NewObjectID(),
				Date:      day1,
				Type:      models.SegmentTypeFlight,
				Transport: "TP 1024",
				From:      models.Point{Name: "Madrid", Code: "MAD", Coordinates: [2]float64{40.4168, -3.7038}},
				To:        models.Point{Name: "Lisbon", Code: "LIS", Coordinates: [2]float64{38.7223, -9.1393}},
			},
		},
		Stays: []models.Stay{
			{
				ID:          primitive.NewObjectID(),
				Location:    "Grand Hotel",
				Coordinates: [2]float64{38.7223, -9.1393},
				StartDate:   day1,
				EndDate:     day2,
				Amenities:   []string{"wifi", "breakfast"},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	trip.RecomputeDateRange()

	_, err := f.db.Collection("trips").InsertOne(ctx, trip)
	if err != nil {
		f.t.Fatalf("failed to create test trip with itinerary: %v", err)
	}

	return trip
}

// CreateAlbum creates a test album for the given trip and related item.
func (f *Fixtures) CreateAlbum(ctx context.Context, tripID primitive.ObjectID, related models.RelatedItem, name string) models.Album {
	f.t.Helper()

	now := time.Now().UTC()
	album := models.Album{
		ID:        primitive.NewObjectID(),
		Name:      name,
		TripID:    tripID,
		Related:   related,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("albums").InsertOne(ctx, album)
	if err != nil {
		f.t.Fatalf("failed to create test album: %v", err)
	}

	return album
}

// CreateDefaultAlbum creates a test album flagged as the default for
// its related item. The caller is responsible for setting the item's
// default_album_id back-pointer when the test needs it.
func (f *Fixtures) CreateDefaultAlbum(ctx context.Context, tripID primitive.ObjectID, related models.RelatedItem, name string) models.Album {
	f.t.Helper()

	now := time.Now().UTC()
	album := models.Album{
		ID:        primitive.NewObjectID(),
		Name:      name,
		TripID:    tripID,
		Related:   related,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("albums").InsertOne(ctx, album)
	if err != nil {
		f.t.Fatalf("failed to create test default album: %v", err)
	}

	return album
}

// CreateMediaItem creates a test media item in the given album.
// Successive calls get increasing ObjectIDs, so insert order is the
// creation order tests can rely on for tie-breaks.
func (f *Fixtures) CreateMediaItem(ctx context.Context, albumID primitive.ObjectID, mediaType, content string, sortOrder int) models.MediaItem {
	f.t.Helper()

	item := models.MediaItem{
		ID:        primitive.NewObjectID(),
		AlbumID:   albumID,
		Type:      mediaType,
		Content:   content,
		SortOrder: sortOrder,
		CreatedAt: time.Now().UTC(),
	}

	_, err := f.db.Collection("mediaitems").InsertOne(ctx, item)
	if err != nil {
		f.t.Fatalf("failed to create test media item: %v", err)
	}

	return item
}

// CreatePhoto creates a test photo media item with the given URL.
func (f *Fixtures) CreatePhoto(ctx context.Context, albumID primitive.ObjectID, url string, sortOrder int) models.MediaItem {
	f.t.Helper()
	return f.CreateMediaItem(ctx, albumID, models.MediaTypePhoto, url, sortOrder)
}

// CreateNote creates a test note media item with the given text.
func (f *Fixtures) CreateNote(ctx context.Context, albumID primitive.ObjectID, text string, sortOrder int) models.MediaItem {
	f.t.Helper()
	return f.CreateMediaItem(ctx, albumID, models.MediaTypeNote, text, sortOrder)
}
