package repository

import (
	"context"
	"fmt"

	"loreforge/internal/models"

	"gorm.io/gorm"
)

type RoadmapRepository interface {
	GetByID(ctx context.Context, id int64) (*models.RoadmapItem, error)
	List(ctx context.Context) ([]models.RoadmapItem, error)
	Create(ctx context.Context, i *models.RoadmapItem) error
	Update(ctx context.Context, i *models.RoadmapItem) error
	Delete(ctx context.Context, id int64) error
}

type roadmapRepository struct {
	db *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) RoadmapRepository {
	return &roadmapRepository{db: db}
}

func (r *roadmapRepository) GetByID(ctx context.Context, id int64) (*models.RoadmapItem, error) {
	var i models.RoadmapItem
	if err := r.db.WithContext(ctx).Preload("Author").First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *roadmapRepository) List(ctx context.Context) ([]models.RoadmapItem, error) {
	list := make([]models.RoadmapItem, 0)
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *roadmapRepository) Create(ctx context.Context, i *models.RoadmapItem) error {
	if err := r.db.WithContext(ctx).Create(i).Error; err != nil {
		return fmt.Errorf("create roadmap item: %w", err)
	}
	return nil
}

func (r *roadmapRepository) Update(ctx context.Context, i *models.RoadmapItem) error {
	if err := r.db.WithContext(ctx).Omit("Author").Save(i).Error; err != nil {
		return fmt.Errorf("update roadmap item: %w", err)
	}
	return nil
}

func (r *roadmapRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.RoadmapItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete roadmap item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
