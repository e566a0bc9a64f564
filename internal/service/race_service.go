package service

import (
	"context"
	"errors"
	"strings"

	"loreforge/internal/apperr"
	"loreforge/internal/authz"
	"loreforge/internal/dto"
	"loreforge/internal/models"
	"loreforge/internal/repository"

	"gorm.io/gorm"
)

type RaceService interface {
	List(ctx context.Context) ([]models.Race, error)
	Get(ctx context.Context, id int64) (*models.Race, error)
	Create(ctx context.Context, viewer *models.User, in dto.CreateRaceRequest) (*models.Race, error)
	Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateRaceRequest) (*models.Race, error)
	Delete(ctx context.Context, viewer *models.User, id int64) error
}

type raceService struct {
	races repository.RaceRepository
}

func NewRaceService(races repository.RaceRepository) RaceService {
	return &raceService{races: races}
}

func (s *raceService) List(ctx context.Context) ([]models.Race, error) {
	return s.races.List(ctx)
}

func (s *raceService) Get(ctx context.Context, id int64) (*models.Race, error) {
	race, err := s.races.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "race not found")
	}
	return race, nil
}

func (s *raceService) Create(ctx context.Context, viewer *models.User, in dto.CreateRaceRequest) (*models.Race, error) {
	if viewer == nil {
		return nil, apperr.ErrUnauthorized
	}
	if isBlank(in.Name) {
		return nil, apperr.Validation("name")
	}

	race := in.ToModel()
	race.Name = strings.TrimSpace(in.Name)

	if err := s.checkNameFree(ctx, race.Name, 0); err != nil {
		return nil, err
	}
	if err := s.races.Create(ctx, &race); err != nil {
		return nil, err
	}
	return &race, nil
}

func (s *raceService) Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateRaceRequest) (*models.Race, error) {
	existing, err := s.races.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "race not found")
	}
	if err := authz.CanWrite(viewer, existing); err != nil {
		return nil, err
	}

	if in.Name != nil {
		if isBlank(*in.Name) {
			return nil, apperr.Validation("name")
		}
		name := strings.TrimSpace(*in.Name)
		// renaming to its own current name is a no-op, not a conflict
		if name != existing.Name {
			if err := s.checkNameFree(ctx, name, existing.ID); err != nil {
				return nil, err
			}
		}
		existing.Name = name
	}
	if in.Description != nil {
		existing.Description = in.Description
	}
	if in.Image != nil {
		existing.Image = in.Image
	}

	if err := s.races.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete refuses to remove a race that characters still reference.
func (s *raceService) Delete(ctx context.Context, viewer *models.User, id int64) error {
	existing, err := s.races.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "race not found")
	}
	if err := authz.CanDelete(viewer, existing); err != nil {
		return err
	}

	count, err := s.races.CountCharacters(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("race is in use by existing characters")
	}

	if err := s.races.Delete(ctx, id); err != nil {
		return asNotFound(err, "race not found")
	}
	return nil
}

// checkNameFree returns Conflict when another race already uses the name.
func (s *raceService) checkNameFree(ctx context.Context, name string, selfID int64) error {
	other, err := s.races.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if other.ID != selfID {
		return apperr.Conflict("race name already in use")
	}
	return nil
}
