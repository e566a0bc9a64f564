package service

import (
	"context"

	"loreforge/internal/apperr"
	"loreforge/internal/authz"
	"loreforge/internal/dto"
	"loreforge/internal/models"
	"loreforge/internal/repository"
)

type MediaService interface {
	List(ctx context.Context, mediaType string) ([]models.MediaItem, error)
	Get(ctx context.Context, id int64) (*models.MediaItem, error)
	Create(ctx context.Context, viewer *models.User, in dto.CreateMediaItemRequest) (*models.MediaItem, error)
	Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateMediaItemRequest) (*models.MediaItem, error)
	Delete(ctx context.Context, viewer *models.User, id int64) error
}

type mediaService struct {
	items repository.MediaRepository
}

func NewMediaService(items repository.MediaRepository) MediaService {
	return &mediaService{items: items}
}

func (s *mediaService) List(ctx context.Context, mediaType string) ([]models.MediaItem, error) {
	if mediaType != "" && !validMediaType(mediaType) {
		return nil, apperr.Invalid("type", "must be image, video, artwork or concept")
	}
	return s.items.List(ctx, mediaType)
}

func (s *mediaService) Get(ctx context.Context, id int64) (*models.MediaItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "media item not found")
	}
	return item, nil
}

func (s *mediaService) Create(ctx context.Context, viewer *models.User, in dto.CreateMediaItemRequest) (*models.MediaItem, error) {
	if viewer == nil {
		return nil, apperr.ErrUnauthorized
	}
	if isBlank(in.Title) {
		return nil, apperr.Validation("title")
	}
	if isBlank(in.URL) {
		return nil, apperr.Validation("url")
	}
	if in.Type != nil && !validMediaType(*in.Type) {
		return nil, apperr.Invalid("type", "must be image, video, artwork or concept")
	}

	item := in.ToModel()
	item.AuthorID = viewer.ID
	item.Tags = normalizeList(in.Tags)

	if err := s.items.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *mediaService) Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateMediaItemRequest) (*models.MediaItem, error) {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "media item not found")
	}
	if err := authz.CanWrite(viewer, existing); err != nil {
		return nil, err
	}
	if in.Title != nil && isBlank(*in.Title) {
		return nil, apperr.Validation("title")
	}
	if in.URL != nil && isBlank(*in.URL) {
		return nil, apperr.Validation("url")
	}
	if in.Type != nil && !validMediaType(*in.Type) {
		return nil, apperr.Invalid("type", "must be image, video, artwork or concept")
	}

	in.ApplyTo(existing)
	if in.Tags != nil {
		existing.Tags = normalizeList(*in.Tags)
	}

	if err := s.items.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *mediaService) Delete(ctx context.Context, viewer *models.User, id int64) error {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "media item not found")
	}
	if err := authz.CanDelete(viewer, existing); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return asNotFound(err, "media item not found")
	}
	return nil
}

func validMediaType(t string) bool {
	switch t {
	case models.MediaTypeImage, models.MediaTypeVideo, models.MediaTypeArtwork, models.MediaTypeConcept:
		return true
	}
	return false
}
