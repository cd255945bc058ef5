// internal/app/policy/albumpolicy/cover.go
package albumpolicy

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/tripfolio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ResolveCover returns the media item an album displays as its cover:
// the explicit cover when it still resolves to a photo owned by the
// album, else the earliest-created photo, else the first item in
// listing order, else nil. Only the explicit pointer is persisted
// state; the fallbacks are computed per read.
func (p *Policy) ResolveCover(ctx context.Context, album models.Album) (*models.MediaItem, error) {
	if album.CoverImageID != nil {
		item, err := p.media.GetByID(ctx, *album.CoverImageID)
		if err == nil && item.AlbumID == album.ID && item.IsPhoto() {
			return &item, nil
		}
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
	}

	photo, err := p.media.FirstPhoto(ctx, album.ID)
	if err == nil {
		return &photo, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	first, err := p.media.FirstInListing(ctx, album.ID)
	if err == nil {
		return &first, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	return nil, nil
}

// SetCoverExplicit validates and persists a client-chosen cover. The
// cover must be a photo owned by the album; nil clears the cover.
func (p *Policy) SetCoverExplicit(ctx context.Context, albumID primitive.ObjectID, coverID *primitive.ObjectID) error {
	if coverID != nil {
		item, err := p.media.GetByID(ctx, *coverID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return fmt.Errorf("%w: cover image %s does not exist", models.ErrValidation, coverID.Hex())
			}
			return err
		}
		if item.AlbumID != albumID {
			return fmt.Errorf("%w: cover image must belong to the album", models.ErrValidation)
		}
		if !item.IsPhoto() {
			return fmt.Errorf("%w: cover image must be a photo", models.ErrValidation)
		}
	}

	if err := p.albums.SetCover(ctx, albumID, coverID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: album %s", models.ErrNotFound, albumID.Hex())
		}
		return err
	}
	return nil
}

// refreshFallbackCover recomputes an album's persisted cover from its
// remaining photos: the earliest-created photo, or no cover at all.
// Notes are never persisted as covers; the first-item display fallback
// stays a read-time concern. A missing album (mid-cascade) is not an
// error.
func (p *Policy) refreshFallbackCover(ctx context.Context, albumID primitive.ObjectID) error {
	photo, err := p.media.FirstPhoto(ctx, albumID)
	switch {
	case err == nil:
		err = p.albums.SetCover(ctx, albumID, &photo.ID)
	case errors.Is(err, mongo.ErrNoDocuments):
		err = p.albums.SetCover(ctx, albumID, nil)
	default:
		return err
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return nil
}
