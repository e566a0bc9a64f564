package dto

import "loreforge/internal/models"

type CreateStoryRequest struct {
	Title        string   `json:"title"`
	Summary      *string  `json:"summary,omitempty"`
	Content      string   `json:"content"`
	MainImage    *string  `json:"main_image,omitempty"`
	Images       []string `json:"images,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Published    bool     `json:"published"`
	CharacterIDs []int64  `json:"character_ids,omitempty"`
	PlaceIDs     []int64  `json:"place_ids,omitempty"`
}

func (r CreateStoryRequest) ToModel() models.Story {
	return models.Story{
		Title:     r.Title,
		Summary:   r.Summary,
		Content:   r.Content,
		MainImage: r.MainImage,
		Published: r.Published,
	}
}

// UpdateStoryRequest: nil ID slices leave the association untouched, empty
// slices disconnect everything. Published toggles in both directions.
type UpdateStoryRequest struct {
	Title        *string   `json:"title,omitempty"`
	Summary      *string   `json:"summary,omitempty"`
	Content      *string   `json:"content,omitempty"`
	MainImage    *string   `json:"main_image,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
	Published    *bool     `json:"published,omitempty"`
	CharacterIDs *[]int64  `json:"character_ids,omitempty"`
	PlaceIDs     *[]int64  `json:"place_ids,omitempty"`
}

func (r UpdateStoryRequest) ApplyTo(s *models.Story) {
	if r.Title != nil {
		s.Title = *r.Title
	}
	if r.Summary != nil {
		s.Summary = r.Summary
	}
	if r.Content != nil {
		s.Content = *r.Content
	}
	if r.MainImage != nil {
		s.MainImage = r.MainImage
	}
	if r.Published != nil {
		s.Published = *r.Published
	}
}
