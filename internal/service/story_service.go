package service

import (
	"context"
	"encoding/json"

	"loreforge/internal/apperr"
	"loreforge/internal/authz"
	"loreforge/internal/cache"
	"loreforge/internal/dto"
	"loreforge/internal/models"
	"loreforge/internal/repository"
)

const storyListCacheKey = "stories:public"

type StoryService interface {
	List(ctx context.Context, viewer *models.User) ([]models.Story, error)
	Get(ctx context.Context, viewer *models.User, id int64) (*models.Story, error)
	Create(ctx context.Context, viewer *models.User, in dto.CreateStoryRequest) (*models.Story, error)
	Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateStoryRequest) (*models.Story, error)
	Delete(ctx context.Context, viewer *models.User, id int64) error
}

type storyService struct {
	stories repository.StoryRepository
	cache   *cache.Client
}

func NewStoryService(stories repository.StoryRepository, cache *cache.Client) StoryService {
	return &storyService{stories: stories, cache: cache}
}

// List hides drafts from everyone but their author; admins see everything.
// The anonymous listing is cached since it is the public site's hot path.
func (s *storyService) List(ctx context.Context, viewer *models.User) ([]models.Story, error) {
	if viewer == nil {
		if raw := s.cache.Get(ctx, storyListCacheKey); raw != nil {
			var cached []models.Story
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
		list, err := s.stories.List(ctx, "", false)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(list); err == nil {
			s.cache.Set(ctx, storyListCacheKey, raw)
		}
		return list, nil
	}
	return s.stories.List(ctx, viewer.ID, viewer.IsAdmin())
}

func (s *storyService) Get(ctx context.Context, viewer *models.User, id int64) (*models.Story, error) {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "story not found")
	}
	if !authz.CanRead(viewer, story) {
		if viewer == nil {
			return nil, apperr.ErrUnauthorized
		}
		return nil, apperr.ErrForbidden
	}
	return story, nil
}

func (s *storyService) Create(ctx context.Context, viewer *models.User, in dto.CreateStoryRequest) (*models.Story, error) {
	if viewer == nil {
		return nil, apperr.ErrUnauthorized
	}
	if isBlank(in.Title) {
		return nil, apperr.Validation("title")
	}
	if isBlank(in.Content) {
		return nil, apperr.Validation("content")
	}

	story := in.ToModel()
	story.AuthorID = viewer.ID
	story.Images = normalizeList(in.Images)
	story.Tags = normalizeList(in.Tags)

	if err := s.stories.Create(ctx, &story); err != nil {
		return nil, err
	}
	if len(in.CharacterIDs) > 0 {
		if err := s.stories.ReplaceCharacters(ctx, &story, in.CharacterIDs); err != nil {
			return nil, err
		}
	}
	if len(in.PlaceIDs) > 0 {
		if err := s.stories.ReplacePlaces(ctx, &story, in.PlaceIDs); err != nil {
			return nil, err
		}
	}
	s.cache.Delete(ctx, storyListCacheKey)

	created, err := s.stories.GetByID(ctx, story.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *storyService) Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateStoryRequest) (*models.Story, error) {
	existing, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "story not found")
	}
	if err := authz.CanWrite(viewer, existing); err != nil {
		return nil, err
	}
	if in.Title != nil && isBlank(*in.Title) {
		return nil, apperr.Validation("title")
	}
	if in.Content != nil && isBlank(*in.Content) {
		return nil, apperr.Validation("content")
	}

	in.ApplyTo(existing)
	if in.Images != nil {
		existing.Images = normalizeList(*in.Images)
	}
	if in.Tags != nil {
		existing.Tags = normalizeList(*in.Tags)
	}

	if err := s.stories.Update(ctx, existing); err != nil {
		return nil, err
	}
	// present keys replace the full association set; absent keys leave it alone
	if in.CharacterIDs != nil {
		if err := s.stories.ReplaceCharacters(ctx, existing, *in.CharacterIDs); err != nil {
			return nil, err
		}
	}
	if in.PlaceIDs != nil {
		if err := s.stories.ReplacePlaces(ctx, existing, *in.PlaceIDs); err != nil {
			return nil, err
		}
	}
	s.cache.Delete(ctx, storyListCacheKey)

	updated, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *storyService) Delete(ctx context.Context, viewer *models.User, id int64) error {
	existing, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "story not found")
	}
	if err := authz.CanDelete(viewer, existing); err != nil {
		return err
	}
	if err := s.stories.Delete(ctx, id); err != nil {
		return asNotFound(err, "story not found")
	}
	s.cache.Delete(ctx, storyListCacheKey)
	return nil
}
