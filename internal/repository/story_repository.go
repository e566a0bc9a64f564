package repository

import (
	"context"
	"fmt"

	"loreforge/internal/models"

	"gorm.io/gorm"
)

type StoryRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Story, error)
	// List returns all stories when includeDrafts is true (admin view),
	// otherwise published stories plus the viewer's own drafts.
	List(ctx context.Context, viewerID string, includeDrafts bool) ([]models.Story, error)
	Create(ctx context.Context, s *models.Story) error
	Update(ctx context.Context, s *models.Story) error
	Delete(ctx context.Context, id int64) error
	ReplaceCharacters(ctx context.Context, s *models.Story, characterIDs []int64) error
	ReplacePlaces(ctx context.Context, s *models.Story, placeIDs []int64) error
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) GetByID(ctx context.Context, id int64) (*models.Story, error) {
	var s models.Story
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Characters").
		Preload("Places").
		First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *storyRepository) List(ctx context.Context, viewerID string, includeDrafts bool) ([]models.Story, error) {
	list := make([]models.Story, 0)
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

func (r *storyRepository) Create(ctx context.Context, s *models.Story) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create story: %w", err)
	}
	return nil
}

func (r *storyRepository) Update(ctx context.Context, s *models.Story) error {
	if err := r.db.WithContext(ctx).Omit("Characters", "Places", "Author").Save(s).Error; err != nil {
		return fmt.Errorf("update story: %w", err)
	}
	return nil
}

func (r *storyRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Select("Characters", "Places").Delete(&models.Story{ID: id})
	if result.Error != nil {
		return fmt.Errorf("delete story: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *storyRepository) ReplaceCharacters(ctx context.Context, s *models.Story, characterIDs []int64) error {
	characters := make([]models.Character, 0, len(characterIDs))
	for _, id := range characterIDs {
		characters = append(characters, models.Character{ID: id})
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(s).Association("Characters").Replace(&characters); err != nil {
			return fmt.Errorf("replace characters: %w", err)
		}
		return nil
	})
}

func (r *storyRepository) ReplacePlaces(ctx context.Context, s *models.Story, placeIDs []int64) error {
	places := make([]models.Place, 0, len(placeIDs))
	for _, id := range placeIDs {
		places = append(places, models.Place{ID: id})
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(s).Association("Places").Replace(&places); err != nil {
			return fmt.Errorf("replace places: %w", err)
		}
		return nil
	})
}
