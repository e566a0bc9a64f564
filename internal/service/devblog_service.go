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

const devblogListCacheKey = "devblog:public"

type DevblogService interface {
	List(ctx context.Context, viewer *models.User) ([]models.DevblogPost, error)
	Get(ctx context.Context, viewer *models.User, id int64) (*models.DevblogPost, error)
	Create(ctx context.Context, viewer *models.User, in dto.CreateDevblogPostRequest) (*models.DevblogPost, error)
	Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateDevblogPostRequest) (*models.DevblogPost, error)
	Delete(ctx context.Context, viewer *models.User, id int64) error
}

type devblogService struct {
	posts repository.DevblogRepository
	cache *cache.Client
}

func NewDevblogService(posts repository.DevblogRepository, cache *cache.Client) DevblogService {
	return &devblogService{posts: posts, cache: cache}
}

func (s *devblogService) List(ctx context.Context, viewer *models.User) ([]models.DevblogPost, error) {
	if viewer == nil {
		if raw := s.cache.Get(ctx, devblogListCacheKey); raw != nil {
			var cached []models.DevblogPost
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
		list, err := s.posts.List(ctx, "", false)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(list); err == nil {
			s.cache.Set(ctx, devblogListCacheKey, raw)
		}
		return list, nil
	}
	return s.posts.List(ctx, viewer.ID, viewer.IsAdmin())
}

func (s *devblogService) Get(ctx context.Context, viewer *models.User, id int64) (*models.DevblogPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "devblog post not found")
	}
	if !authz.CanRead(viewer, post) {
		if viewer == nil {
			return nil, apperr.ErrUnauthorized
		}
		return nil, apperr.ErrForbidden
	}
	return post, nil
}

func (s *devblogService) Create(ctx context.Context, viewer *models.User, in dto.CreateDevblogPostRequest) (*models.DevblogPost, error) {
	if viewer == nil {
		return nil, apperr.ErrUnauthorized
	}
	if isBlank(in.Title) {
		return nil, apperr.Validation("title")
	}
	if isBlank(in.Content) {
		return nil, apperr.Validation("content")
	}

	post := in.ToModel()
	post.AuthorID = viewer.ID
	post.Tags = normalizeList(in.Tags)

	if err := s.posts.Create(ctx, &post); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, devblogListCacheKey)
	return &post, nil
}

func (s *devblogService) Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateDevblogPostRequest) (*models.DevblogPost, error) {
	existing, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "devblog post not found")
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
	if in.Tags != nil {
		existing.Tags = normalizeList(*in.Tags)
	}

	if err := s.posts.Update(ctx, existing); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, devblogListCacheKey)
	return existing, nil
}

func (s *devblogService) Delete(ctx context.Context, viewer *models.User, id int64) error {
	existing, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "devblog post not found")
	}
	if err := authz.CanDelete(viewer, existing); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return asNotFound(err, "devblog post not found")
	}
	s.cache.Delete(ctx, devblogListCacheKey)
	return nil
}
