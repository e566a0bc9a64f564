package service

import (
	"context"
	"strings"

	"loreforge/internal/apperr"
	"loreforge/internal/authz"
	"loreforge/internal/dto"
	"loreforge/internal/models"
	"loreforge/internal/repository"
)

type CharacterService interface {
	List(ctx context.Context) ([]models.Character, error)
	Get(ctx context.Context, id int64) (*models.Character, error)
	Create(ctx context.Context, viewer *models.User, in dto.CreateCharacterRequest) (*models.Character, error)
	Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateCharacterRequest) (*models.Character, error)
	Delete(ctx context.Context, viewer *models.User, id int64) error
}

type characterService struct {
	characters repository.CharacterRepository
	races      repository.RaceRepository
}

func NewCharacterService(characters repository.CharacterRepository, races repository.RaceRepository) CharacterService {
	return &characterService{characters: characters, races: races}
}

func (s *characterService) List(ctx context.Context) ([]models.Character, error) {
	return s.characters.List(ctx)
}

func (s *characterService) Get(ctx context.Context, id int64) (*models.Character, error) {
	c, err := s.characters.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "character not found")
	}
	return c, nil
}

func (s *characterService) Create(ctx context.Context, viewer *models.User, in dto.CreateCharacterRequest) (*models.Character, error) {
	if viewer == nil {
		return nil, apperr.ErrUnauthorized
	}
	if isBlank(in.Name) {
		return nil, apperr.Validation("name")
	}

	c := in.ToModel()
	c.AuthorID = viewer.ID
	c.Images = normalizeList(in.Images)
	c.Videos = normalizeList(in.Videos)

	// Free-text race wins over the FK; a character never carries both.
	if in.CustomRace != nil && !isBlank(*in.CustomRace) {
		custom := strings.TrimSpace(*in.CustomRace)
		c.CustomRace = &custom
	} else if in.RaceID != nil {
		if _, err := s.races.GetByID(ctx, *in.RaceID); err != nil {
			return nil, asNotFound(err, "race not found")
		}
		c.RaceID = in.RaceID
	}

	if err := s.characters.Create(ctx, &c); err != nil {
		return nil, err
	}
	if len(in.PlaceIDs) > 0 {
		if err := s.characters.ReplacePlaces(ctx, &c, in.PlaceIDs); err != nil {
			return nil, err
		}
	}

	created, err := s.characters.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *characterService) Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateCharacterRequest) (*models.Character, error) {
	existing, err := s.characters.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "character not found")
	}
	if err := authz.CanWrite(viewer, existing); err != nil {
		return nil, err
	}
	if in.Name != nil && isBlank(*in.Name) {
		return nil, apperr.Validation("name")
	}

	in.ApplyTo(existing)

	// Race resolution: non-empty free text wins and disconnects the FK; an
	// explicit race_id connects it and clears the free text; neither present
	// disconnects the FK.
	switch {
	case in.CustomRace != nil && !isBlank(*in.CustomRace):
		custom := strings.TrimSpace(*in.CustomRace)
		existing.CustomRace = &custom
		existing.RaceID = nil
	case in.RaceID != nil:
		if _, err := s.races.GetByID(ctx, *in.RaceID); err != nil {
			return nil, asNotFound(err, "race not found")
		}
		existing.RaceID = in.RaceID
		existing.CustomRace = nil
	default:
		if in.CustomRace != nil {
			// explicit blank clears the free text too
			existing.CustomRace = nil
		}
		existing.RaceID = nil
	}

	if in.Images != nil {
		existing.Images = normalizeList(*in.Images)
	}
	if in.Videos != nil {
		existing.Videos = normalizeList(*in.Videos)
	}

	if err := s.characters.Update(ctx, existing); err != nil {
		return nil, err
	}
	if in.PlaceIDs != nil {
		if err := s.characters.ReplacePlaces(ctx, existing, *in.PlaceIDs); err != nil {
			return nil, err
		}
	}

	updated, err := s.characters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *characterService) Delete(ctx context.Context, viewer *models.User, id int64) error {
	existing, err := s.characters.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "character not found")
	}
	if err := authz.CanDelete(viewer, existing); err != nil {
		return err
	}
	if err := s.characters.Delete(ctx, id); err != nil {
		return asNotFound(err, "character not found")
	}
	return nil
}
