package service

import (
	"context"

	"loreforge/internal/apperr"
	"loreforge/internal/authz"
	"loreforge/internal/dto"
	"loreforge/internal/models"
	"loreforge/internal/repository"
)

type FAQService interface {
	List(ctx context.Context) ([]models.FAQItem, error)
	Get(ctx context.Context, id int64) (*models.FAQItem, error)
	Create(ctx context.Context, viewer *models.User, in dto.CreateFAQItemRequest) (*models.FAQItem, error)
	Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateFAQItemRequest) (*models.FAQItem, error)
	Delete(ctx context.Context, viewer *models.User, id int64) error
}

type faqService struct {
	items repository.FAQRepository
}

func NewFAQService(items repository.FAQRepository) FAQService {
	return &faqService{items: items}
}

func (s *faqService) List(ctx context.Context) ([]models.FAQItem, error) {
	return s.items.List(ctx)
}

func (s *faqService) Get(ctx context.Context, id int64) (*models.FAQItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "faq item not found")
	}
	return item, nil
}

func (s *faqService) Create(ctx context.Context, viewer *models.User, in dto.CreateFAQItemRequest) (*models.FAQItem, error) {
	if viewer == nil {
		return nil, apperr.ErrUnauthorized
	}
	if isBlank(in.Question) {
		return nil, apperr.Validation("question")
	}
	if isBlank(in.Answer) {
		return nil, apperr.Validation("answer")
	}
	if isBlank(in.Category) {
		return nil, apperr.Validation("category")
	}

	item := in.ToModel()
	item.AuthorID = viewer.ID

	if err := s.items.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *faqService) Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateFAQItemRequest) (*models.FAQItem, error) {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "faq item not found")
	}
	if err := authz.CanWrite(viewer, existing); err != nil {
		return nil, err
	}
	if in.Question != nil && isBlank(*in.Question) {
		return nil, apperr.Validation("question")
	}
	if in.Answer != nil && isBlank(*in.Answer) {
		return nil, apperr.Validation("answer")
	}
	if in.Category != nil && isBlank(*in.Category) {
		return nil, apperr.Validation("category")
	}

	in.ApplyTo(existing)

	if err := s.items.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *faqService) Delete(ctx context.Context, viewer *models.User, id int64) error {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "faq item not found")
	}
	if err := authz.CanDelete(viewer, existing); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return asNotFound(err, "faq item not found")
	}
	return nil
}
