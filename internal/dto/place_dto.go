package dto

import "loreforge/internal/models"

type CreatePlaceRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Content     *string  `json:"content,omitempty"`
	MainImage   *string  `json:"main_image,omitempty"`
	Images      []string `json:"images,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CharacterIDs []int64 `json:"character_ids,omitempty"`
}

func (r CreatePlaceRequest) ToModel() models.Place {
	return models.Place{
		Name:        r.Name,
		Description: r.Description,
		Content:     r.Content,
		MainImage:   r.MainImage,
	}
}

// UpdatePlaceRequest: nil CharacterIDs leaves the association untouched, an
// empty slice disconnects every character.
type UpdatePlaceRequest struct {
	Name         *string   `json:"name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Content      *string   `json:"content,omitempty"`
	MainImage    *string   `json:"main_image,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
	CharacterIDs *[]int64  `json:"character_ids,omitempty"`
}

func (r UpdatePlaceRequest) ApplyTo(p *models.Place) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.Content != nil {
		p.Content = r.Content
	}
	if r.MainImage != nil {
		p.MainImage = r.MainImage
	}
}
