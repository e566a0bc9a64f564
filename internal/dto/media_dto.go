package dto

import "loreforge/internal/models"

type CreateMediaItemRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Type        *string  `json:"type,omitempty"`
	URL         string   `json:"url"`
	Thumbnail   *string  `json:"thumbnail,omitempty"`
	Width       *int     `json:"width,omitempty"`
	Height      *int     `json:"height,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (r CreateMediaItemRequest) ToModel() models.MediaItem {
	item := models.MediaItem{
		Title:       r.Title,
		Description: r.Description,
		Type:        models.MediaTypeImage,
		URL:         r.URL,
		Thumbnail:   r.Thumbnail,
		Width:       r.Width,
		Height:      r.Height,
	}
	if r.Type != nil {
		item.Type = *r.Type
	}
	return item
}

type UpdateMediaItemRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Type        *string   `json:"type,omitempty"`
	URL         *string   `json:"url,omitempty"`
	Thumbnail   *string   `json:"thumbnail,omitempty"`
	Width       *int      `json:"width,omitempty"`
	Height      *int      `json:"height,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

func (r UpdateMediaItemRequest) ApplyTo(m *models.MediaItem) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.Type != nil {
		m.Type = *r.Type
	}
	if r.URL != nil {
		m.URL = *r.URL
	}
	if r.Thumbnail != nil {
		m.Thumbnail = r.Thumbnail
	}
	if r.Width != nil {
		m.Width = r.Width
	}
	if r.Height != nil {
		m.Height = r.Height
	}
}
