// internal/app/policy/albumpolicy/media.go
package albumpolicy

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/tripfolio/internal/app/system/txn"
	"github.com/dalemusser/tripfolio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateMedia adds an item to an album and applies the cover trigger: a
// photo landing in a coverless album becomes its cover.
func (p *Policy) CreateMedia(ctx context.Context, item models.MediaItem) (models.MediaItem, error) {
	if !models.IsValidMediaType(item.Type) {
		return models.MediaItem{}, fmt.Errorf("%w: %q is not a media type", models.ErrValidation, item.Type)
	}

	album, err := p.albums.GetByID(ctx, item.AlbumID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.MediaItem{}, fmt.Errorf("%w: album %s", models.ErrNotFound, item.AlbumID.Hex())
		}
		return models.MediaItem{}, err
	}

	created, err := p.media.Create(ctx, item)
	if err != nil {
		return models.MediaItem{}, err
	}

	if album.CoverImageID == nil && created.IsPhoto() {
		if err := p.albums.SetCover(ctx, album.ID, &created.ID); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return models.MediaItem{}, err
		}
	}
	return created, nil
}

// UpdateMedia persists field changes to an item and re-checks the cover
// when the item's type changed: a cover turning into a note falls back
// to the earliest remaining photo, and a note turning into a photo can
// fill an empty cover slot, mirroring the create trigger.
func (p *Policy) UpdateMedia(ctx context.Context, itemID primitive.ObjectID, mut models.MediaItem) (models.MediaItem, error) {
	if !models.IsValidMediaType(mut.Type) {
		return models.MediaItem{}, fmt.Errorf("%w: %q is not a media type", models.ErrValidation, mut.Type)
	}

	before, err := p.media.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.MediaItem{}, fmt.Errorf("%w: media item %s", models.ErrNotFound, itemID.Hex())
		}
		return models.MediaItem{}, err
	}

	if err := p.media.Update(ctx, itemID, mut); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.MediaItem{}, fmt.Errorf("%w: media item %s", models.ErrNotFound, itemID.Hex())
		}
		return models.MediaItem{}, err
	}

	updated, err := p.media.GetByID(ctx, itemID)
	if err != nil {
		return models.MediaItem{}, err
	}

	if updated.Type != before.Type {
		album, err := p.albums.GetByID(ctx, updated.AlbumID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return updated, nil
			}
			return models.MediaItem{}, err
		}

		wasCover := album.CoverImageID != nil && *album.CoverImageID == updated.ID
		switch {
		case wasCover && !updated.IsPhoto():
			if err := p.refreshFallbackCover(ctx, album.ID); err != nil {
				return models.MediaItem{}, err
			}
		case album.CoverImageID == nil && updated.IsPhoto():
			if err := p.albums.SetCover(ctx, album.ID, &updated.ID); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				return models.MediaItem{}, err
			}
		}
	}
	return updated, nil
}

// MoveMedia re-owns an item into the target album and updates both
// covers: the source re-resolves when it loses its cover, the target
// adopts the photo when it had none. Moving an item onto its own album
// is a no-op.
func (p *Policy) MoveMedia(ctx context.Context, itemID, targetAlbumID primitive.ObjectID) (models.MediaItem, error) {
	item, err := p.media.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.MediaItem{}, fmt.Errorf("%w: media item %s", models.ErrNotFound, itemID.Hex())
		}
		return models.MediaItem{}, err
	}

	target, err := p.albums.GetByID(ctx, targetAlbumID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.MediaItem{}, fmt.Errorf("%w: album %s", models.ErrNotFound, targetAlbumID.Hex())
		}
		return models.MediaItem{}, err
	}

	if item.AlbumID == target.ID {
		return item, nil
	}
	sourceID := item.AlbumID

	err = txn.WithTransaction(ctx, p.client, p.log, func(ctx context.Context) error {
		if err := p.media.Move(ctx, item.ID, target.ID); err != nil {
			return err
		}

		source, err := p.albums.GetByID(ctx, sourceID)
		switch {
		case err == nil:
			if source.CoverImageID != nil && *source.CoverImageID == item.ID {
				if err := p.refreshFallbackCover(ctx, source.ID); err != nil {
					return err
				}
			}
		case !errors.Is(err, mongo.ErrNoDocuments):
			return err
		}

		if target.CoverImageID == nil && item.IsPhoto() {
			if err := p.albums.SetCover(ctx, target.ID, &item.ID); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.MediaItem{}, fmt.Errorf("%w: media item %s", models.ErrNotFound, itemID.Hex())
		}
		return models.MediaItem{}, err
	}

	item.AlbumID = target.ID
	return item, nil
}

// DeleteMedia removes an item; when the item was its album's cover the
// album falls back to the earliest remaining photo. Returns the removed
// item so the caller can clean up an uploaded file.
func (p *Policy) DeleteMedia(ctx context.Context, itemID primitive.ObjectID) (models.MediaItem, error) {
	item, err := p.media.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.MediaItem{}, fmt.Errorf("%w: media item %s", models.ErrNotFound, itemID.Hex())
		}
		return models.MediaItem{}, err
	}

	err = txn.WithTransaction(ctx, p.client, p.log, func(ctx context.Context) error {
		if _, err := p.media.Delete(ctx, item.ID); err != nil {
			return err
		}

		album, err := p.albums.GetByID(ctx, item.AlbumID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil
			}
			return err
		}
		if album.CoverImageID != nil && *album.CoverImageID == item.ID {
			return p.refreshFallbackCover(ctx, album.ID)
		}
		return nil
	})
	if err != nil {
		return models.MediaItem{}, err
	}
	return item, nil
}
