package repository

import (
	"context"
	"fmt"

	"loreforge/internal/models"

	"gorm.io/gorm"
)

type DevblogRepository interface {
	GetByID(ctx context.Context, id int64) (*models.DevblogPost, error)
	List(ctx context.Context, viewerID string, includeDrafts bool) ([]models.DevblogPost, error)
	Create(ctx context.Context, p *models.DevblogPost) error
	Update(ctx context.Context, p *models.DevblogPost) error
	Delete(ctx context.Context, id int64) error
}

type devblogRepository struct {
	db *gorm.DB
}

func NewDevblogRepository(db *gorm.DB) DevblogRepository {
	return &devblogRepository{db: db}
}

func (r *devblogRepository) GetByID(ctx context.Context, id int64) (*models.DevblogPost, error) {
	var p models.DevblogPost
	if err := r.db.WithContext(ctx).Preload("Author").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *devblogRepository) List(ctx context.Context, viewerID string, includeDrafts bool) ([]models.DevblogPost, error) {
	list := make([]models.DevblogPost, 0)
	q := r.db.WithContext(ctx).Order("created_at desc")
	if !includeDrafts {
		if viewerID != "" {
			q = q.Where("published = ? OR author_id = ?", true, viewerID)
		} else {
			q = q.Where("published = ?", true)
		}
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *devblogRepository) Create(ctx context.Context, p *models.DevblogPost) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create devblog post: %w", err)
	}
	return nil
}

func (r *devblogRepository) Update(ctx context.Context, p *models.DevblogPost) error {
	if err := r.db.WithContext(ctx).Omit("Author").Save(p).Error; err != nil {
		return fmt.Errorf("update devblog post: %w", err)
	}
	return nil
}

func (r *devblogRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.DevblogPost{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete devblog post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
