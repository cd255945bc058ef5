// internal/app/store/media/mediastore.go
package mediastore

import (
	"context"
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
	return &Store{c: db.Collection("mediaitems")}
}

// listingOrder is the album display order: sort_order ascending, then
// newest first among equal sort orders, with a stable ID tie-break.
func listingOrder() bson.D {
	return bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: 1},
	}
}

// ListByAlbum returns an album's media items in listing order.
func (s *Store) ListByAlbum(ctx context.Context, albumID primitive.ObjectID) ([]models.MediaItem, error) {
	opts := options.Find().SetSort(listingOrder())
	cur, err := s.c.Find(ctx, bson.M{"album_id": albumID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.MediaItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByAlbums returns the media items of several albums, unordered.
// Cascade deletion uses this to find uploaded files to clean up.
func (s *Store) ListByAlbums(ctx context.Context, albumIDs []primitive.ObjectID) ([]models.MediaItem, error) {
	if len(albumIDs) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"album_id": bson.M{"$in": albumIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.MediaItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.MediaItem, error) {
	var m models.MediaItem
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return models.MediaItem{}, err
	}
	return m, nil
}

// FirstPhoto returns the earliest-created photo in an album, or
// mongo.ErrNoDocuments when the album holds no photos. This is the
// cover fallback order.
func (s *Store) FirstPhoto(ctx context.Context, albumID primitive.ObjectID) (models.MediaItem, error) {
	filter := bson.M{"album_id": albumID, "type": models.MediaTypePhoto}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	var m models.MediaItem
	if err := s.c.FindOne(ctx, filter, opts).Decode(&m); err != nil {
		return models.MediaItem{}, err
	}
	return m, nil
}

// FirstInListing returns the item an album displays first, or
// mongo.ErrNoDocuments for an empty album.
func (s *Store) FirstInListing(ctx context.Context, albumID primitive.ObjectID) (models.MediaItem, error) {
	opts := options.FindOne().SetSort(listingOrder())

	var m models.MediaItem
	if err := s.c.FindOne(ctx, bson.M{"album_id": albumID}, opts).Decode(&m); err != nil {
		return models.MediaItem{}, err
	}
	return m, nil
}

// Create inserts a new MediaItem, setting its ID and creation time.
func (s *Store) Create(ctx context.Context, m models.MediaItem) (models.MediaItem, error) {
	m.ID = primitive.NewObjectID()
	m.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.MediaItem{}, err
	}
	return m, nil
}

// Update persists the mutable fields of a media item. The caller is
// expected to pass the full merged document (fetch, apply changes,
// update); album_id moves go through Move instead.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.MediaItem) error {
	set := bson.M{
		"type":       mut.Type,
		"content":    mut.Content,
		"caption":    mut.Caption,
		"metadata":   mut.Metadata,
		"sort_order": mut.SortOrder,
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Move re-owns a media item into the target album.
func (s *Store) Move(ctx context.Context, id, targetAlbumID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"album_id": targetAlbumID}}

	res, err := s.c.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a media item by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByAlbum removes all media items in an album. Returns the number
// of documents deleted.
func (s *Store) DeleteByAlbum(ctx context.Context, albumID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"album_id": albumID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByAlbums removes the media items of several albums at once.
func (s *Store) DeleteByAlbums(ctx context.Context, albumIDs []primitive.ObjectID) (int64, error) {
	if len(albumIDs) == 0 {
		return 0, nil
	}
	res, err := s.c.DeleteMany(ctx, bson.M{"album_id": bson.M{"$in": albumIDs}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
