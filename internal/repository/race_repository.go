package repository

import (
	"context"
	"fmt"

	"loreforge/internal/apperr"
	"loreforge/internal/models"

	"gorm.io/gorm"
)

type RaceRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Race, error)
	FindByName(ctx context.Context, name string) (*models.Race, error)
	List(ctx context.Context) ([]models.Race, error)
	Create(ctx context.Context, r *models.Race) error
	Update(ctx context.Context, r *models.Race) error
	Delete(ctx context.Context, id int64) error
	CountCharacters(ctx context.Context, raceID int64) (int64, error)
}

type raceRepository struct {
	db *gorm.DB
}

func NewRaceRepository(db *gorm.DB) RaceRepository {
	return &raceRepository{db: db}
}

func (r *raceRepository) GetByID(ctx context.Context, id int64) (*models.Race, error) {
	var race models.Race
	if err := r.db.WithContext(ctx).Preload("Characters").First(&race, id).Error; err != nil {
		return nil, err
	}
	return &race, nil
}

func (r *raceRepository) FindByName(ctx context.Context, name string) (*models.Race, error) {
	var race models.Race
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&race).Error; err != nil {
		return nil, err
	}
	return &race, nil
}

func (r *raceRepository) List(ctx context.Context) ([]models.Race, error) {
	list := make([]models.Race, 0)
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *raceRepository) Create(ctx context.Context, race *models.Race) error {
	if err := r.db.WithContext(ctx).Create(race).Error; err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("race name already in use")
		}
		return fmt.Errorf("create race: %w", err)
	}
	return nil
}

func (r *raceRepository) Update(ctx context.Context, race *models.Race) error {
	if err := r.db.WithContext(ctx).Omit("Characters").Save(race).Error; err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("race name already in use")
		}
		return fmt.Errorf("update race: %w", err)
	}
	return nil
}

func (r *raceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Race{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete race: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountCharacters reports how many characters reference the race; deletion is
// refused while the count is non-zero.
func (r *raceRepository) CountCharacters(ctx context.Context, raceID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Character{}).
		Where("race_id = ?", raceID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
