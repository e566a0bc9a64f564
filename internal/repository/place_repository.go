package repository

import (
	"context"
	"fmt"

	"loreforge/internal/models"

	"gorm.io/gorm"
)

type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Place, error)
	List(ctx context.Context) ([]models.Place, error)
	Create(ctx context.Context, p *models.Place) error
	Update(ctx context.Context, p *models.Place) error
	Delete(ctx context.Context, id int64) error
	ReplaceCharacters(ctx context.Context, p *models.Place, characterIDs []int64) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) GetByID(ctx context.Context, id int64) (*models.Place, error) {
	var p models.Place
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Characters").
		Preload("Stories").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *placeRepository) List(ctx context.Context) ([]models.Place, error) {
	list := make([]models.Place, 0)
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *placeRepository) Create(ctx context.Context, p *models.Place) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create place: %w", err)
	}
	return nil
}

func (r *placeRepository) Update(ctx context.Context, p *models.Place) error {
	if err := r.db.WithContext(ctx).Omit("Characters", "Stories", "Author").Save(p).Error; err != nil {
		return fmt.Errorf("update place: %w", err)
	}
	return nil
}

func (r *placeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Select("Characters", "Stories").Delete(&models.Place{ID: id})
	if result.Error != nil {
		return fmt.Errorf("delete place: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *placeRepository) ReplaceCharacters(ctx context.Context, p *models.Place, characterIDs []int64) error {
	characters := make([]models.Character, 0, len(characterIDs))
	for _, id := range characterIDs {
		characters = append(characters, models.Character{ID: id})
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(p).Association("Characters").Replace(&characters); err != nil {
			return fmt.Errorf("replace characters: %w", err)
		}
		return nil
	})
}
