package dto

import "loreforge/internal/models"

type CreateRaceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

func (r CreateRaceRequest) ToModel() models.Race {
	return models.Race{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
	}
}

type UpdateRaceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

func (r UpdateRaceRequest) ApplyTo(race *models.Race) {
	if r.Name != nil {
		race.Name = *r.Name
	}
	if r.Description != nil {
		race.Description = r.Description
	}
	if r.Image != nil {
		race.Image = r.Image
	}
}
