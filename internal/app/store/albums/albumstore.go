// internal/app/store/albums/albumstore.go
package albumstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/tripfolio/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrDuplicateDefault is returned when a write would leave two default
// albums on the same related item. The partial unique index enforces
// this at the database level even when callers race.
var ErrDuplicateDefault = errors.New("a default album already exists for this item")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("albums")}
}

// creationOrder sorts oldest first with a stable ID tie-break. Album
// listings and default-album promotion both use this order.
func creationOrder() bson.D {
	return bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
}

// List returns all albums in creation order.
func (s *Store) List(ctx context.Context) ([]models.Album, error) {
	return s.find(ctx, bson.M{})
}

// ListByTrip returns the albums of a trip in creation order, including
// those related to the trip's segments and stays.
func (s *Store) ListByTrip(ctx context.Context, tripID primitive.ObjectID) ([]models.Album, error) {
	return s.find(ctx, bson.M{"trip_id": tripID})
}

// ListByRelated returns the albums attached to one related item in
// creation order.
func (s *Store) ListByRelated(ctx context.Context, tripID primitive.ObjectID, related models.RelatedItem) ([]models.Album, error) {
	return s.find(ctx, relatedFilter(tripID, related))
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Album, error) {
	opts := options.Find().SetSort(creationOrder())
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var albums []models.Album
	if err := cur.All(ctx, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Album, error) {
	var a models.Album
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.Album{}, err
	}
	return a, nil
}

// FindDefaultForItem returns the default album of a related item, or
// mongo.ErrNoDocuments when the item has none.
func (s *Store) FindDefaultForItem(ctx context.Context, tripID primitive.ObjectID, related models.RelatedItem) (models.Album, error) {
	filter := relatedFilter(tripID, related)
	filter["is_default"] = true

	var a models.Album
	if err := s.c.FindOne(ctx, filter).Decode(&a); err != nil {
		return models.Album{}, err
	}
	return a, nil
}

// Create inserts a new Album, setting its ID and timestamps.
func (s *Store) Create(ctx context.Context, a models.Album) (models.Album, error) {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Album{}, ErrDuplicateDefault
		}
		return models.Album{}, err
	}
	return a, nil
}

// UpdateInfo modifies the album's name and description and refreshes
// UpdatedAt. The default flag and cover have dedicated methods because
// they carry invariants of their own.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, name, desc string) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if strings.TrimSpace(name) != "" {
		set["name"] = name
	}
	// Description can be cleared (set to empty)
	set["description"] = desc

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetCover writes the album's persisted cover pointer. A nil coverID
// clears it.
func (s *Store) SetCover(ctx context.Context, id primitive.ObjectID, coverID *primitive.ObjectID) error {
	var update bson.M
	if coverID != nil {
		update = bson.M{"$set": bson.M{"cover_image_id": coverID, "updated_at": time.Now().UTC()}}
	} else {
		update = bson.M{
			"$unset": bson.M{"cover_image_id": ""},
			"$set":   bson.M{"updated_at": time.Now().UTC()},
		}
	}

	res, err := s.c.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetDefault flips the album's default flag. Promoting an album while
// another default exists for the same item trips the partial unique
// index and returns ErrDuplicateDefault; demote the old default first.
func (s *Store) SetDefault(ctx context.Context, id primitive.ObjectID, isDefault bool) error {
	update := bson.M{"$set": bson.M{"is_default": isDefault, "updated_at": time.Now().UTC()}}

	res, err := s.c.UpdateByID(ctx, id, update)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateDefault
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes an album by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByTrip removes all albums belonging to a trip. Returns the
// number of documents deleted.
func (s *Store) DeleteByTrip(ctx context.Context, tripID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"trip_id": tripID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// relatedFilter matches albums attached to one related item. For
// trip-level relations the item_id clause matches documents where the
// field is absent.
func relatedFilter(tripID primitive.ObjectID, related models.RelatedItem) bson.M {
	filter := bson.M{
		"trip_id":      tripID,
		"related.type": related.Type,
	}
	if related.ItemID != nil {
		filter["related.item_id"] = *related.ItemID
	} else {
		filter["related.item_id"] = bson.M{"$exists": false}
	}
	return filter
}
