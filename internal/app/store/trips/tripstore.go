// internal/app/store/trips/tripstore.go
package tripstore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/tripfolio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("trips")}
}

// List returns all trips, newest first.
func (s *Store) List(ctx context.Context) ([]models.Trip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var trips []models.Trip
	if err := cur.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Trip, error) {
	var t models.Trip
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return models.Trip{}, err
	}
	return t, nil
}

// Create inserts a new Trip, assigning IDs to the trip and its embedded
// items and deriving the date fields from the itinerary.
func (s *Store) Create(ctx context.Context, t models.Trip) (models.Trip, error) {
	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	t.EnsureEmbeddedIDs()
	t.RecomputeDateRange()
	if t.Segments == nil {
		t.Segments = []models.Segment{}
	}
	if t.Stays == nil {
		t.Stays = []models.Stay{}
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Trip{}, err
	}
	return t, nil
}

// Update persists the mutable fields of a trip, re-deriving the date
// fields from the embedded segments and stays. The caller is expected
// to pass the full merged document (fetch, apply changes, update).
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Trip) (models.Trip, error) {
	mut.EnsureEmbeddedIDs()
	mut.RecomputeDateRange()
	if mut.Segments == nil {
		mut.Segments = []models.Segment{}
	}
	if mut.Stays == nil {
		mut.Stays = []models.Stay{}
	}
	mut.UpdatedAt = time.Now().UTC()

	set := bson.M{
		"description": mut.Description,
		"cover_image": mut.CoverImage,
		"segments":    mut.Segments,
		"stays":       mut.Stays,
		"updated_at":  mut.UpdatedAt,
	}
	if strings.TrimSpace(mut.Name) != "" {
		set["name"] = mut.Name
	}

	update := bson.M{"$set": set}
	if mut.StartDate != nil {
		set["start_date"] = mut.StartDate
		set["end_date"] = mut.EndDate
		set["date_range"] = mut.DateRange
	} else {
		update["$unset"] = bson.M{"start_date": "", "end_date": "", "date_range": ""}
	}

	res, err := s.c.UpdateByID(ctx, id, update)
	if err != nil {
		return models.Trip{}, err
	}
	if res.MatchedCount == 0 {
		return models.Trip{}, mongo.ErrNoDocuments
	}
	return s.GetByID(ctx, id)
}

// SetItemDefaultAlbum writes the default_album_id back-pointer on the
// trip itself or on one of its embedded items. A nil albumID clears the
// pointer. Returns mongo.ErrNoDocuments when the trip or the embedded
// item does not exist.
func (s *Store) SetItemDefaultAlbum(ctx context.Context, tripID primitive.ObjectID, related models.RelatedItem, albumID *primitive.ObjectID) error {
	if err := related.Validate(); err != nil {
		return err
	}

	filter := bson.M{"_id": tripID}
	field := "default_album_id"

	switch related.Type {
	case models.ItemTypeSegment:
		filter["segments._id"] = *related.ItemID
		field = "segments.$.default_album_id"
	case models.ItemTypeStay:
		filter["stays._id"] = *related.ItemID
		field = "stays.$.default_album_id"
	}

	var update bson.M
	if albumID != nil {
		update = bson.M{"$set": bson.M{field: albumID, "updated_at": time.Now().UTC()}}
	} else {
		update = bson.M{
			"$unset": bson.M{field: ""},
			"$set":   bson.M{"updated_at": time.Now().UTC()},
		}
	}

	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a trip by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
