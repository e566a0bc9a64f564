package repository

import (
	"context"
	"fmt"

	"loreforge/internal/models"

	"gorm.io/gorm"
)

type CharacterRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Character, error)
	List(ctx context.Context) ([]models.Character, error)
	Create(ctx context.Context, c *models.Character) error
	Update(ctx context.Context, c *models.Character) error
	Delete(ctx context.Context, id int64) error
	ReplacePlaces(ctx context.Context, c *models.Character, placeIDs []int64) error
}

type characterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) GetByID(ctx context.Context, id int64) (*models.Character, error) {
	var c models.Character
	if err := r.db.WithContext(ctx).
		Preload("Race").
		Preload("Author").
		Preload("Places").
		Preload("Stories").
		First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *characterRepository) List(ctx context.Context) ([]models.Character, error) {
	// empty result must render as [] on the wire, never null
	list := make([]models.Character, 0)
	if err := r.db.WithContext(ctx).
		Preload("Race").
		Order("name asc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *characterRepository) Create(ctx context.Context, c *models.Character) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create character: %w", err)
	}
	return nil
}

// Update saves all columns so cleared optional fields (RaceID, CustomRace)
// are written back as NULL.
func (r *characterRepository) Update(ctx context.Context, c *models.Character) error {
	if err := r.db.WithContext(ctx).Omit("Places", "Stories", "Race", "Author").Save(c).Error; err != nil {
		return fmt.Errorf("update character: %w", err)
	}
	return nil
}

func (r *characterRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Select("Places", "Stories").Delete(&models.Character{ID: id})
	if result.Error != nil {
		return fmt.Errorf("delete character: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplacePlaces swaps the full character-place association for the supplied
// set. An empty set disconnects everything.
func (r *characterRepository) ReplacePlaces(ctx context.Context, c *models.Character, placeIDs []int64) error {
	places := make([]models.Place, 0, len(placeIDs))
	for _, id := range placeIDs {
		places = append(places, models.Place{ID: id})
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(c).Association("Places").Replace(&places); err != nil {
			return fmt.Errorf("replace places: %w", err)
		}
		return nil
	})
}
