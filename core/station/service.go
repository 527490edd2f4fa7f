package station

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"localfm/core/library"
	"localfm/logger"
	"localfm/model"
	"localfm/repository"
)

// Service provides radio station CRUD over the station repository.
type Service struct {
	stations repository.StationRepository
}

// NewService creates a station service.
func NewService(stations repository.StationRepository) *Service {
	return &Service{stations: stations}
}

// Create persists a new station. The id is derived from the name so a
// station keeps its identity across recreations; temporary stations
// get a random id because their names (track titles) may collide.
func (s *Service) Create(ctx context.Context, station *model.RadioStation) error {
	if station.Name == "" {
		return fmt.Errorf("station name must not be empty")
	}
	if station.ID == "" {
		if station.IsTemporary {
			station.ID = uuid.NewString()
		} else {
			station.ID = "st" + library.HashID(station.Name)
		}
	}
	now := time.Now()
	if station.CreatedAt.IsZero() {
		station.CreatedAt = now
	}
	station.UpdatedAt = now
	return s.stations.Create(ctx, station)
}

// CreateFromSeeds derives criteria from seed tracks and persists a
// station named name. baseWeights optionally overrides the computed
// weight per attribute.
func (s *Service) CreateFromSeeds(ctx context.Context, name string, seeds []*model.LibraryEntry, baseWeights map[model.CriterionAttribute]float64) (*model.RadioStation, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("cannot create station %q without seed tracks", name)
	}
	station := &model.RadioStation{
		Name:     name,
		Criteria: DeriveCriteria(seeds, baseWeights),
	}
	if err := s.Create(ctx, station); err != nil {
		return nil, err
	}
	logger.Info("station created from seeds",
		logger.String("name", name), logger.Int("seeds", len(seeds)))
	return station, nil
}

// CreateTemporary builds the implicit ephemeral station used when a
// track is played outside any station context. Album is de-emphasized
// so the station widens to the artist's sound rather than one record.
func (s *Service) CreateTemporary(ctx context.Context, track *model.LibraryEntry) (*model.RadioStation, error) {
	station := &model.RadioStation{
		Name: fmt.Sprintf("Playing: %s", track.Title),
		Criteria: DeriveCriteria([]*model.LibraryEntry{track},
			map[model.CriterionAttribute]float64{model.AttrAlbum: 0.5}),
		IsTemporary: true,
	}
	if err := s.Create(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

// Update merges a partial patch onto an existing station. Missing ids
// surface repository.ErrNotFound unchanged.
func (s *Service) Update(ctx context.Context, id string, patch model.StationPatch) (*model.RadioStation, error) {
	return s.stations.Update(ctx, id, patch)
}

// Delete removes a station by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.stations.Delete(ctx, id)
}

// GetByID returns a station by id.
func (s *Service) GetByID(ctx context.Context, id string) (*model.RadioStation, error) {
	return s.stations.GetByID(ctx, id)
}

// GetAll returns every persisted station.
func (s *Service) GetAll(ctx context.Context) ([]*model.RadioStation, error) {
	return s.stations.GetAll(ctx)
}

// MarkPlayed stamps a station's last-played time.
func (s *Service) MarkPlayed(ctx context.Context, id string) error {
	now := time.Now()
	_, err := s.stations.Update(ctx, id, model.StationPatch{LastPlayed: &now})
	return err
}
