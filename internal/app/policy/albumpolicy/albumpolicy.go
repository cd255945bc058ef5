// internal/app/policy/albumpolicy/albumpolicy.go

// Package albumpolicy owns the referential rules between trips, albums,
// and media items: the one-default-album-per-item invariant, cover
// image resolution, and cascade deletion. Handlers call into this
// package instead of juggling the stores themselves so every write
// sequence that spans documents lives in one place, behind the
// transaction wrapper.
package albumpolicy

import (
	"context"
	"errors"
	"fmt"

	albumstore "github.com/dalemusser/tripfolio/internal/app/store/albums"
	mediastore "github.com/dalemusser/tripfolio/internal/app/store/media"
	tripstore "github.com/dalemusser/tripfolio/internal/app/store/trips"
	"github.com/dalemusser/tripfolio/internal/app/system/txn"
	"github.com/dalemusser/tripfolio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Policy struct {
	client *mongo.Client
	log    *zap.Logger
	trips  *tripstore.Store
	albums *albumstore.Store
	media  *mediastore.Store
}

func New(db *mongo.Database, log *zap.Logger) *Policy {
	return &Policy{
		client: db.Client(),
		log:    log,
		trips:  tripstore.New(db),
		albums: albumstore.New(db),
		media:  mediastore.New(db),
	}
}

// DefaultExistsError reports that a related item already has a default
// album. It unwraps to models.ErrConflict; handlers use the album ID to
// tell clients where the existing default lives.
type DefaultExistsError struct {
	AlbumID primitive.ObjectID
}

func (e *DefaultExistsError) Error() string {
	return fmt.Sprintf("conflict: a default album already exists for this item (%s)", e.AlbumID.Hex())
}

func (e *DefaultExistsError) Unwrap() error { return models.ErrConflict }

// EnsureDefaultAlbum creates the default album for a related item and
// writes the item's default_album_id back-pointer. The album is named
// "<itemLabel> Album" after the trip name, segment transport label, or
// stay location. Fails with NotFound when the trip or item is missing
// and with a DefaultExistsError when the item already has a default.
func (p *Policy) EnsureDefaultAlbum(ctx context.Context, tripID primitive.ObjectID, related models.RelatedItem) (models.Album, error) {
	if err := related.Validate(); err != nil {
		return models.Album{}, err
	}

	trip, err := p.trips.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Album{}, fmt.Errorf("%w: trip %s", models.ErrNotFound, tripID.Hex())
		}
		return models.Album{}, err
	}

	label, err := itemLabel(trip, related)
	if err != nil {
		return models.Album{}, err
	}

	if existing, err := p.albums.FindDefaultForItem(ctx, tripID, related); err == nil {
		return models.Album{}, &DefaultExistsError{AlbumID: existing.ID}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Album{}, err
	}

	return p.createDefault(ctx, models.Album{
		Name:      models.DefaultAlbumName(label),
		TripID:    trip.ID,
		Related:   related,
		IsDefault: true,
	})
}

// CreateAlbum inserts a client-specified album after checking that its
// trip and related item exist. Albums requested as default go through
// the same conflict check and back-pointer write as EnsureDefaultAlbum.
func (p *Policy) CreateAlbum(ctx context.Context, a models.Album) (models.Album, error) {
	if err := a.Related.Validate(); err != nil {
		return models.Album{}, err
	}

	trip, err := p.trips.GetByID(ctx, a.TripID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Album{}, fmt.Errorf("%w: trip %s", models.ErrNotFound, a.TripID.Hex())
		}
		return models.Album{}, err
	}
	if err := relatedItemExists(trip, a.Related); err != nil {
		return models.Album{}, err
	}

	// Covers reference media, which a fresh album cannot have yet.
	a.CoverImageID = nil

	if !a.IsDefault {
		return p.albums.Create(ctx, a)
	}

	if existing, err := p.albums.FindDefaultForItem(ctx, a.TripID, a.Related); err == nil {
		return models.Album{}, &DefaultExistsError{AlbumID: existing.ID}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Album{}, err
	}

	return p.createDefault(ctx, a)
}

// createDefault inserts a default album and repoints its item inside
// one transaction. A duplicate-default race during the insert is
// reported as the (now) existing album's conflict.
func (p *Policy) createDefault(ctx context.Context, a models.Album) (models.Album, error) {
	a.IsDefault = true

	var album models.Album
	err := txn.WithTransaction(ctx, p.client, p.log, func(ctx context.Context) error {
		created, err := p.albums.Create(ctx, a)
		if err != nil {
			return err
		}
		album = created
		return p.trips.SetItemDefaultAlbum(ctx, a.TripID, a.Related, &created.ID)
	})
	if err != nil {
		if errors.Is(err, albumstore.ErrDuplicateDefault) {
			if existing, findErr := p.albums.FindDefaultForItem(ctx, a.TripID, a.Related); findErr == nil {
				return models.Album{}, &DefaultExistsError{AlbumID: existing.ID}
			}
			return models.Album{}, fmt.Errorf("%w: a default album already exists for this item", models.ErrConflict)
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Album{}, fmt.Errorf("%w: trip or item vanished while creating the default album", models.ErrNotFound)
		}
		return models.Album{}, err
	}
	return album, nil
}

// PromoteDefault makes the album the default for its related item,
// demoting the current default and repointing the item. Promoting the
// current default is a no-op.
func (p *Policy) PromoteDefault(ctx context.Context, albumID primitive.ObjectID) (models.Album, error) {
	album, err := p.albums.GetByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Album{}, fmt.Errorf("%w: album %s", models.ErrNotFound, albumID.Hex())
		}
		return models.Album{}, err
	}
	if album.IsDefault {
		return album, nil
	}

	err = txn.WithTransaction(ctx, p.client, p.log, func(ctx context.Context) error {
		current, err := p.albums.FindDefaultForItem(ctx, album.TripID, album.Related)
		switch {
		case err == nil:
			// Demote first so the unique index stays satisfiable when
			// running without a transaction.
			if err := p.albums.SetDefault(ctx, current.ID, false); err != nil {
				return err
			}
		case !errors.Is(err, mongo.ErrNoDocuments):
			return err
		}

		if err := p.albums.SetDefault(ctx, album.ID, true); err != nil {
			return err
		}
		return p.trips.SetItemDefaultAlbum(ctx, album.TripID, album.Related, &album.ID)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Album{}, fmt.Errorf("%w: trip or item for this album no longer exists", models.ErrNotFound)
		}
		if errors.Is(err, albumstore.ErrDuplicateDefault) {
			return models.Album{}, fmt.Errorf("%w: another default album was created concurrently", models.ErrConflict)
		}
		return models.Album{}, err
	}

	album.IsDefault = true
	return album, nil
}

// DeleteAlbum removes an album and all of its media items. A default
// album hands its slot to the earliest-created sibling first; the only
// album of a segment or stay cannot be deleted. A trip-level default
// with no sibling clears the trip's pointer instead. Returns the
// removed media items so the caller can clean up uploaded files.
func (p *Policy) DeleteAlbum(ctx context.Context, albumID primitive.ObjectID) ([]models.MediaItem, error) {
	album, err := p.albums.GetByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: album %s", models.ErrNotFound, albumID.Hex())
		}
		return nil, err
	}

	var successor *models.Album
	if album.IsDefault {
		siblings, err := p.albums.ListByRelated(ctx, album.TripID, album.Related)
		if err != nil {
			return nil, err
		}
		for i := range siblings {
			if siblings[i].ID != album.ID {
				successor = &siblings[i]
				break
			}
		}
		if successor == nil && !album.Related.IsTripLevel() {
			return nil, fmt.Errorf("%w: cannot delete the only album for this %s", models.ErrConflict, album.Related.Type)
		}
	}

	items, err := p.media.ListByAlbum(ctx, album.ID)
	if err != nil {
		return nil, err
	}

	err = txn.WithTransaction(ctx, p.client, p.log, func(ctx context.Context) error {
		// The album document goes first so its is_default slot frees up
		// before a successor claims it.
		if _, err := p.albums.Delete(ctx, album.ID); err != nil {
			return err
		}
		if album.IsDefault {
			if successor != nil {
				if err := p.albums.SetDefault(ctx, successor.ID, true); err != nil {
					return err
				}
				if err := p.trips.SetItemDefaultAlbum(ctx, album.TripID, album.Related, &successor.ID); err != nil {
					return err
				}
			} else if err := p.trips.SetItemDefaultAlbum(ctx, album.TripID, album.Related, nil); err != nil {
				if !errors.Is(err, mongo.ErrNoDocuments) {
					return err
				}
			}
		}
		_, err := p.media.DeleteByAlbum(ctx, album.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: trip or item for this album no longer exists", models.ErrNotFound)
		}
		return nil, err
	}
	return items, nil
}

// DeleteTrip removes a trip together with its albums and their media
// items. Returns the removed media items for upload cleanup.
func (p *Policy) DeleteTrip(ctx context.Context, tripID primitive.ObjectID) ([]models.MediaItem, error) {
	if _, err := p.trips.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: trip %s", models.ErrNotFound, tripID.Hex())
		}
		return nil, err
	}

	albums, err := p.albums.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	albumIDs := make([]primitive.ObjectID, len(albums))
	for i, a := range albums {
		albumIDs[i] = a.ID
	}

	items, err := p.media.ListByAlbums(ctx, albumIDs)
	if err != nil {
		return nil, err
	}

	err = txn.WithTransaction(ctx, p.client, p.log, func(ctx context.Context) error {
		if _, err := p.media.DeleteByAlbums(ctx, albumIDs); err != nil {
			return err
		}
		if _, err := p.albums.DeleteByTrip(ctx, tripID); err != nil {
			return err
		}
		_, err := p.trips.Delete(ctx, tripID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// relatedItemExists checks that a segment or stay relation points at an
// item embedded in the trip. Trip-level relations always pass.
func relatedItemExists(trip models.Trip, related models.RelatedItem) error {
	switch related.Type {
	case models.ItemTypeSegment:
		if trip.SegmentByID(*related.ItemID) == nil {
			return fmt.Errorf("%w: segment %s is not part of trip %s", models.ErrNotFound, related.ItemID.Hex(), trip.ID.Hex())
		}
	case models.ItemTypeStay:
		if trip.StayByID(*related.ItemID) == nil {
			return fmt.Errorf("%w: stay %s is not part of trip %s", models.ErrNotFound, related.ItemID.Hex(), trip.ID.Hex())
		}
	}
	return nil
}

// itemLabel names a related item for the generated default album name.
func itemLabel(trip models.Trip, related models.RelatedItem) (string, error) {
	if err := relatedItemExists(trip, related); err != nil {
		return "", err
	}
	switch related.Type {
	case models.ItemTypeSegment:
		return trip.SegmentByID(*related.ItemID).Transport, nil
	case models.ItemTypeStay:
		return trip.StayByID(*related.ItemID).Location, nil
	default:
		return trip.Name, nil
	}
}
