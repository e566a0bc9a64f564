package repository

import (
	"context"
	"fmt"

	"loreforge/internal/models"

	"gorm.io/gorm"
)

type MediaRepository interface {
	GetByID(ctx context.Context, id int64) (*models.MediaItem, error)
	List(ctx context.Context, mediaType string) ([]models.MediaItem, error)
	Create(ctx context.Context, m *models.MediaItem) error
	Update(ctx context.Context, m *models.MediaItem) error
	Delete(ctx context.Context, id int64) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) GetByID(ctx context.Context, id int64) (*models.MediaItem, error) {
	var m models.MediaItem
	if err := r.db.WithContext(ctx).Preload("Author").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List optionally filters by media type; an empty type returns everything.
func (r *mediaRepository) List(ctx context.Context, mediaType string) ([]models.MediaItem, error) {
	list := make([]models.MediaItem, 0)
	q := r.db.WithContext(ctx).Order("created_at desc")
	if mediaType != "" {
		q = q.Where("type = ?", mediaType)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *mediaRepository) Create(ctx context.Context, m *models.MediaItem) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create media item: %w", err)
	}
	return nil
}

func (r *mediaRepository) Update(ctx context.Context, m *models.MediaItem) error {
	if err := r.db.WithContext(ctx).Omit("Author").Save(m).Error; err != nil {
		return fmt.Errorf("update media item: %w", err)
	}
	return nil
}

func (r *mediaRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.MediaItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete media item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
