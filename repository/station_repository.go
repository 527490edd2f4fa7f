package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"localfm/model"
)

// StationDirectory is the narrow view of station storage the library
// side (sync, auto-discovery) depends on. Keeping it separate from
// StationRepository breaks the cache/station dependency cycle: the
// cache never sees the full station service.
type StationDirectory interface {
	Create(ctx context.Context, station *model.RadioStation) error
	GetAll(ctx context.Context) ([]*model.RadioStation, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// StationRepository defines the store operations for radio stations.
type StationRepository interface {
	StationDirectory

	// GetByID returns the station with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.RadioStation, error)

	// Update merges a partial patch onto an existing station and bumps
	// UpdatedAt. Returns ErrNotFound if the id does not exist; the
	// store is left unchanged in that case.
	Update(ctx context.Context, id string, patch model.StationPatch) (*model.RadioStation, error)

	// Delete removes a station. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

type gormStationRepository struct {
	db *gorm.DB
}

// NewStationRepository creates a StationRepository backed by the given store handle.
func NewStationRepository(db *gorm.DB) StationRepository {
	return &gormStationRepository{db: db}
}

func (r *gormStationRepository) Create(ctx context.Context, station *model.RadioStation) error {
	if err := r.db.WithContext(ctx).Create(station).Error; err != nil {
		return fmt.Errorf("failed to create station %q: %w", station.Name, err)
	}
	return nil
}

func (r *gormStationRepository) GetByID(ctx context.Context, id string) (*model.RadioStation, error) {
	var station model.RadioStation
	err := r.db.WithContext(ctx).First(&station, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("station %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get station %s: %w", id, err)
	}
	return &station, nil
}

func (r *gormStationRepository) GetAll(ctx context.Context) ([]*model.RadioStation, error) {
	stations := make([]*model.RadioStation, 0)
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&stations).Error; err != nil {
		return nil, fmt.Errorf("failed to query all stations: %w", err)
	}
	return stations, nil
}

func (r *gormStationRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.RadioStation{}).
		Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check station name %q: %w", name, err)
	}
	return count > 0, nil
}

func (r *gormStationRepository) Update(ctx context.Context, id string, patch model.StationPatch) (*model.RadioStation, error) {
	station, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		station.Name = *patch.Name
	}
	if patch.Description != nil {
		station.Description = *patch.Description
	}
	if patch.Criteria != nil {
		station.Criteria = patch.Criteria
	}
	if patch.ImagePath != nil {
		station.ImagePath = *patch.ImagePath
	}
	if patch.LastPlayed != nil {
		station.LastPlayed = patch.LastPlayed
	}
	if patch.IsFavorite != nil {
		station.IsFavorite = *patch.IsFavorite
	}
	station.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(station).Error; err != nil {
		return nil, fmt.Errorf("failed to update station %s: %w", id, err)
	}
	return station, nil
}

func (r *gormStationRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.RadioStation{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete station %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("station %s: %w", id, ErrNotFound)
	}
	return nil
}
