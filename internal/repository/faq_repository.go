package repository

import (
	"context"
	"fmt"

	"loreforge/internal/models"

	"gorm.io/gorm"
)

type FAQRepository interface {
	GetByID(ctx context.Context, id int64) (*models.FAQItem, error)
	List(ctx context.Context) ([]models.FAQItem, error)
	Create(ctx context.Context, i *models.FAQItem) error
	Update(ctx context.Context, i *models.FAQItem) error
	Delete(ctx context.Context, id int64) error
}

type faqRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) GetByID(ctx context.Context, id int64) (*models.FAQItem, error) {
	var i models.FAQItem
	if err := r.db.WithContext(ctx).Preload("Author").First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *faqRepository) List(ctx context.Context) ([]models.FAQItem, error) {
	list := make([]models.FAQItem, 0)
	if err := r.db.WithContext(ctx).Order("category asc, created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *faqRepository) Create(ctx context.Context, i *models.FAQItem) error {
	if err := r.db.WithContext(ctx).Create(i).Error; err != nil {
		return fmt.Errorf("create faq item: %w", err)
	}
	return nil
}

func (r *faqRepository) Update(ctx context.Context, i *models.FAQItem) error {
	if err := r.db.WithContext(ctx).Omit("Author").Save(i).Error; err != nil {
		return fmt.Errorf("update faq item: %w", err)
	}
	return nil
}

func (r *faqRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.FAQItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete faq item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
