package service

import (
	"context"

	"loreforge/internal/apperr"
	"loreforge/internal/authz"
	"loreforge/internal/dto"
	"loreforge/internal/models"
	"loreforge/internal/repository"
)

type RoadmapService interface {
	List(ctx context.Context) ([]models.RoadmapItem, error)
	Get(ctx context.Context, id int64) (*models.RoadmapItem, error)
	Create(ctx context.Context, viewer *models.User, in dto.CreateRoadmapItemRequest) (*models.RoadmapItem, error)
	Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateRoadmapItemRequest) (*models.RoadmapItem, error)
	Delete(ctx context.Context, viewer *models.User, id int64) error
}

type roadmapService struct {
	items repository.RoadmapRepository
}

func NewRoadmapService(items repository.RoadmapRepository) RoadmapService {
	return &roadmapService{items: items}
}

func (s *roadmapService) List(ctx context.Context) ([]models.RoadmapItem, error) {
	return s.items.List(ctx)
}

func (s *roadmapService) Get(ctx context.Context, id int64) (*models.RoadmapItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "roadmap item not found")
	}
	return item, nil
}

func (s *roadmapService) Create(ctx context.Context, viewer *models.User, in dto.CreateRoadmapItemRequest) (*models.RoadmapItem, error) {
	if viewer == nil {
		return nil, apperr.ErrUnauthorized
	}
	if isBlank(in.Title) {
		return nil, apperr.Validation("title")
	}
	if isBlank(in.Category) {
		return nil, apperr.Validation("category")
	}
	if in.Progress != nil && (*in.Progress < 0 || *in.Progress > 100) {
		return nil, apperr.Invalid("progress", "must be between 0 and 100")
	}
	if in.Status != nil && !validRoadmapStatus(*in.Status) {
		return nil, apperr.Invalid("status", "must be planned, in_progress or completed")
	}

	item := in.ToModel()
	item.AuthorID = viewer.ID
	item.Tags = normalizeList(in.Tags)

	if err := s.items.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *roadmapService) Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateRoadmapItemRequest) (*models.RoadmapItem, error) {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "roadmap item not found")
	}
	if err := authz.CanWrite(viewer, existing); err != nil {
		return nil, err
	}
	if in.Title != nil && isBlank(*in.Title) {
		return nil, apperr.Validation("title")
	}
	if in.Category != nil && isBlank(*in.Category) {
		return nil, apperr.Validation("category")
	}
	if in.Progress != nil && (*in.Progress < 0 || *in.Progress > 100) {
		return nil, apperr.Invalid("progress", "must be between 0 and 100")
	}
	if in.Status != nil && !validRoadmapStatus(*in.Status) {
		return nil, apperr.Invalid("status", "must be planned, in_progress or completed")
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

func (s *roadmapService) Delete(ctx context.Context, viewer *models.User, id int64) error {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "roadmap item not found")
	}
	if err := authz.CanDelete(viewer, existing); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return asNotFound(err, "roadmap item not found")
	}
	return nil
}

func validRoadmapStatus(status string) bool {
	switch status {
	case models.RoadmapStatusPlanned, models.RoadmapStatusInProgress, models.RoadmapStatusCompleted:
		return true
	}
	return false
}
