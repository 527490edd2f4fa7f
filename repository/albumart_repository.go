package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"localfm/model"
)

// AlbumArtRepository defines the store operations for embedded artwork.
type AlbumArtRepository interface {
	// Create inserts artwork linked to a library entry by shared id.
	Create(ctx context.Context, art *model.AlbumArt) error

	// GetByID returns the artwork for the given entry id, or nil if absent.
	GetByID(ctx context.Context, id string) (*model.AlbumArt, error)

	// DeleteByID removes artwork. Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id string) error

	// DeleteOrphans removes artwork rows whose id no longer has a
	// matching library entry, returning how many were swept.
	DeleteOrphans(ctx context.Context) (int64, error)
}

type gormAlbumArtRepository struct {
	db *gorm.DB
}

// NewAlbumArtRepository creates an AlbumArtRepository backed by the given store handle.
func NewAlbumArtRepository(db *gorm.DB) AlbumArtRepository {
	return &gormAlbumArtRepository{db: db}
}

func (r *gormAlbumArtRepository) Create(ctx context.Context, art *model.AlbumArt) error {
	if err := r.db.WithContext(ctx).Save(art).Error; err != nil {
		return fmt.Errorf("failed to create album art %s: %w", art.ID, err)
	}
	return nil
}

func (r *gormAlbumArtRepository) GetByID(ctx context.Context, id string) (*model.AlbumArt, error) {
	var art model.AlbumArt
	err := r.db.WithContext(ctx).First(&art, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get album art %s: %w", id, err)
	}
	return &art, nil
}

func (r *gormAlbumArtRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&model.AlbumArt{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete album art %s: %w", id, err)
	}
	return nil
}

func (r *gormAlbumArtRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id NOT IN (?)", r.db.Model(&model.LibraryEntry{}).Select("id")).
		Delete(&model.AlbumArt{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to sweep orphan album art: %w", res.Error)
	}
	return res.RowsAffected, nil
}
