package service

import (
	"context"

	"loreforge/internal/apperr"
	"loreforge/internal/authz"
	"loreforge/internal/dto"
	"loreforge/internal/models"
	"loreforge/internal/repository"
)

type PlaceService interface {
	List(ctx context.Context) ([]models.Place, error)
	Get(ctx context.Context, id int64) (*models.Place, error)
	Create(ctx context.Context, viewer *models.User, in dto.CreatePlaceRequest) (*models.Place, error)
	Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdatePlaceRequest) (*models.Place, error)
	Delete(ctx context.Context, viewer *models.User, id int64) error
}

type placeService struct {
	places repository.PlaceRepository
}

func NewPlaceService(places repository.PlaceRepository) PlaceService {
	return &placeService{places: places}
}

func (s *placeService) List(ctx context.Context) ([]models.Place, error) {
	return s.places.List(ctx)
}

func (s *placeService) Get(ctx context.Context, id int64) (*models.Place, error) {
	p, err := s.places.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "place not found")
	}
	return p, nil
}

func (s *placeService) Create(ctx context.Context, viewer *models.User, in dto.CreatePlaceRequest) (*models.Place, error) {
	if viewer == nil {
		return nil, apperr.ErrUnauthorized
	}
	if isBlank(in.Name) {
		return nil, apperr.Validation("name")
	}

	p := in.ToModel()
	p.AuthorID = viewer.ID
	p.Images = normalizeList(in.Images)
	p.Tags = normalizeList(in.Tags)

	if err := s.places.Create(ctx, &p); err != nil {
		return nil, err
	}
	if len(in.CharacterIDs) > 0 {
		if err := s.places.ReplaceCharacters(ctx, &p, in.CharacterIDs); err != nil {
			return nil, err
		}
	}

	created, err := s.places.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *placeService) Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdatePlaceRequest) (*models.Place, error) {
	existing, err := s.places.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "place not found")
	}
	if err := authz.CanWrite(viewer, existing); err != nil {
		return nil, err
	}
	if in.Name != nil && isBlank(*in.Name) {
		return nil, apperr.Validation("name")
	}

	in.ApplyTo(existing)
	if in.Images != nil {
		existing.Images = normalizeList(*in.Images)
	}
	if in.Tags != nil {
		existing.Tags = normalizeList(*in.Tags)
	}

	if err := s.places.Update(ctx, existing); err != nil {
		return nil, err
	}
	// present key (even with an empty list) replaces the whole set
	if in.CharacterIDs != nil {
		if err := s.places.ReplaceCharacters(ctx, existing, *in.CharacterIDs); err != nil {
			return nil, err
		}
	}

	updated, err := s.places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *placeService) Delete(ctx context.Context, viewer *models.User, id int64) error {
	existing, err := s.places.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "place not found")
	}
	if err := authz.CanDelete(viewer, existing); err != nil {
		return err
	}
	if err := s.places.Delete(ctx, id); err != nil {
		return asNotFound(err, "place not found")
	}
	return nil
}
