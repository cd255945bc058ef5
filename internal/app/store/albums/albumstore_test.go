package albumstore_test

import (
	"testing"

	albumstore "github.com/dalemusser/tripfolio/internal/app/store/albums"
	"github.com/dalemusser/tripfolio/internal/app/system/indexes"
	"github.com/dalemusser/tripfolio/internal/domain/models"
	"github.com/dalemusser/tripfolio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := albumstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fixtures.CreateTrip(ctx, "Lisbon Weekend")

	album := models.Album{
		Name:    "City Shots",
		TripID:  trip.ID,
		Related: models.TripRelation(),
	}

	created, err := store.Create(ctx, album)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if created.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
	if created.IsDefault {
		t.Error("expected IsDefault to stay false unless requested")
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := albumstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_ListByTrip_CreationOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := albumstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fixtures.CreateTripWithItinerary(ctx, "Lisbon Weekend")
	other := fixtures.CreateTrip(ctx, "Other Trip")

	first := fixtures.CreateAlbum(ctx, trip.ID, models.TripRelation(), "First")
	second := fixtures.CreateAlbum(ctx, trip.ID, models.SegmentRelation(trip.Segments[0].ID), "Second")
	fixtures.CreateAlbum(ctx, other.ID, models.TripRelation(), "Elsewhere")

	albums, err := store.ListByTrip(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ListByTrip failed: %v", err)
	}

	if len(albums) != 2 {
		t.Fatalf("expected 2 albums, got %d", len(albums))
	}
	if albums[0].ID != first.ID || albums[1].ID != second.ID {
		t.Errorf("expected creation order, got %q then %q", albums[0].Name, albums[1].Name)
	}
}

func TestStore_ListByRelated_TripLevelExcludesItemAlbums(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := albumstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fixtures.CreateTripWithItinerary(ctx, "Lisbon Weekend")
	segRel := models.SegmentRelation(trip.Segments[0].ID)
	stayRel := models.StayRelation(trip.Stays[0].ID)

	tripAlbum := fixtures.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Trip Album")
	segAlbum := fixtures.CreateAlbum(ctx, trip.ID, segRel, "Flight Album")
	fixtures.CreateAlbum(ctx, trip.ID, stayRel, "Hotel Album")

	tripLevel, err := store.ListByRelated(ctx, trip.ID, models.TripRelation())
	if err != nil {
		t.Fatalf("ListByRelated failed: %v", err)
	}
	if len(tripLevel) != 1 || tripLevel[0].ID != tripAlbum.ID {
		t.Errorf("trip-level listing: got %d albums, want only %q", len(tripLevel), tripAlbum.Name)
	}

	forSegment, err := store.ListByRelated(ctx, trip.ID, segRel)
	if err != nil {
		t.Fatalf("ListByRelated failed: %v", err)
	}
	if len(forSegment) != 1 || forSegment[0].ID != segAlbum.ID {
		t.Errorf("segment listing: got %d albums, want only %q", len(forSegment), segAlbum.Name)
	}
}

func TestStore_FindDefaultForItem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := albumstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fixtures.CreateTripWithItinerary(ctx, "Lisbon Weekend")
	stayRel := models.StayRelation(trip.Stays[0].ID)

	fixtures.CreateAlbum(ctx, trip.ID, stayRel, "Extra Album")
	def := fixtures.CreateDefaultAlbum(ctx, trip.ID, stayRel, "Grand Hotel Album")

	found, err := store.FindDefaultForItem(ctx, trip.ID, stayRel)
	if err != nil {
		t.Fatalf("FindDefaultForItem failed: %v", err)
	}
	if found.ID != def.ID {
		t.Errorf("default album: got %v, want %v", found.ID, def.ID)
	}

	// A different item has no default
	_, err = store.FindDefaultForItem(ctx, trip.ID, models.SegmentRelation(trip.Segments[0].ID))
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_Create_DuplicateDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := albumstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	trip := fixtures.CreateTripWithItinerary(ctx, "Lisbon Weekend")
	stayRel := models.StayRelation(trip.Stays[0].ID)

	fixtures.CreateDefaultAlbum(ctx, trip.ID, stayRel, "Grand Hotel Album")

	_, err := store.Create(ctx, models.Album{
		Name:      "Second Default",
		TripID:    trip.ID,
		Related:   stayRel,
		IsDefault: true,
	})
	if err != albumstore.ErrDuplicateDefault {
		t.Errorf("expected ErrDuplicateDefault, got %v", err)
	}
}

func TestStore_SetDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := albumstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	trip := fixtures.CreateTripWithItinerary(ctx, "Lisbon Weekend")
	stayRel := models.StayRelation(trip.Stays[0].ID)

	def := fixtures.CreateDefaultAlbum(ctx, trip.ID, stayRel, "Grand Hotel Album")
	other := fixtures.CreateAlbum(ctx, trip.ID, stayRel, "Second Album")

	// Promoting while another default exists trips the unique index
	err := store.SetDefault(ctx, other.ID, true)
	if err != albumstore.ErrDuplicateDefault {
		t.Errorf("expected ErrDuplicateDefault, got %v", err)
	}

	// Demote then promote succeeds
	if err := store.SetDefault(ctx, def.ID, false); err != nil {
		t.Fatalf("demote failed: %v", err)
	}
	if err := store.SetDefault(ctx, other.ID, true); err != nil {
		t.Fatalf("promote failed: %v", err)
	}

	found, err := store.FindDefaultForItem(ctx, trip.ID, stayRel)
	if err != nil {
		t.Fatalf("FindDefaultForItem failed: %v", err)
	}
	if found.ID != other.ID {
		t.Errorf("default album: got %v, want %v", found.ID, other.ID)
	}
}

func TestStore_UpdateInfo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := albumstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fixtures.CreateTrip(ctx, "Lisbon Weekend")
	album := fixtures.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Old Name")

	if err := store.UpdateInfo(ctx, album.ID, "New Name", "A description"); err != nil {
		t.Fatalf("UpdateInfo failed: %v", err)
	}

	found, err := store.GetByID(ctx, album.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Name != "New Name" {
		t.Errorf("Name: got %q, want %q", found.Name, "New Name")
	}
	if found.Description != "A description" {
		t.Errorf("Description: got %q, want %q", found.Description, "A description")
	}
}

func TestStore_SetCover(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := albumstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fixtures.CreateTrip(ctx, "Lisbon Weekend")
	album := fixtures.CreateAlbum(ctx, trip.ID, models.TripRelation(), "City Shots")
	photo := fixtures.CreatePhoto(ctx, album.ID, "/uploads/photo-1.jpg", 0)

	if err := store.SetCover(ctx, album.ID, &photo.ID); err != nil {
		t.Fatalf("SetCover failed: %v", err)
	}

	found, err := store.GetByID(ctx, album.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.CoverImageID == nil || *found.CoverImageID != photo.ID {
		t.Errorf("CoverImageID: got %v, want %v", found.CoverImageID, photo.ID)
	}

	// Clearing the cover
	if err := store.SetCover(ctx, album.ID, nil); err != nil {
		t.Fatalf("clearing SetCover failed: %v", err)
	}
	found, err = store.GetByID(ctx, album.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.CoverImageID != nil {
		t.Errorf("expected CoverImageID cleared, got %v", found.CoverImageID)
	}
}

func TestStore_DeleteByTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := albumstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fixtures.CreateTripWithItinerary(ctx, "Lisbon Weekend")
	other := fixtures.CreateTrip(ctx, "Other Trip")

	fixtures.CreateAlbum(ctx, trip.ID, models.TripRelation(), "One")
	fixtures.CreateAlbum(ctx, trip.ID, models.SegmentRelation(trip.Segments[0].ID), "Two")
	kept := fixtures.CreateAlbum(ctx, other.ID, models.TripRelation(), "Kept")

	deleted, err := store.DeleteByTrip(ctx, trip.ID)
	if err != nil {
		t.Fatalf("DeleteByTrip failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deletions, got %d", deleted)
	}

	if _, err := store.GetByID(ctx, kept.ID); err != nil {
		t.Errorf("album of another trip should survive: %v", err)
	}
}
