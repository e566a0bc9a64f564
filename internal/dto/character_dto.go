package dto

import "loreforge/internal/models"

type CreateCharacterRequest struct {
	Name             string   `json:"name"`
	LastName         *string  `json:"last_name,omitempty"`
	Title            *string  `json:"title,omitempty"`
	CustomRace       *string  `json:"custom_race,omitempty"`
	RaceID           *int64   `json:"race_id,omitempty"`
	Class            *string  `json:"class,omitempty"`
	Faction          *string  `json:"faction,omitempty"`
	Alignment        *string  `json:"alignment,omitempty"`
	Background       *string  `json:"background,omitempty"`
	Description      *string  `json:"description,omitempty"`
	MainImage        *string  `json:"main_image,omitempty"`
	HeaderBackground *string  `json:"header_background,omitempty"`
	Images           []string `json:"images,omitempty"`
	Videos           []string `json:"videos,omitempty"`
	PlaceIDs         []int64  `json:"place_ids,omitempty"`
}

func (r CreateCharacterRequest) ToModel() models.Character {
	return models.Character{
		Name:             r.Name,
		LastName:         r.LastName,
		Title:            r.Title,
		Class:            r.Class,
		Faction:          r.Faction,
		Alignment:        r.Alignment,
		Background:       r.Background,
		Description:      r.Description,
		MainImage:        r.MainImage,
		HeaderBackground: r.HeaderBackground,
	}
}

// UpdateCharacterRequest carries only the fields present in the request body.
// A nil pointer means "leave untouched"; PlaceIDs with an empty slice means
// "disconnect every place". Race wiring (CustomRace vs RaceID) is resolved by
// the service.
type UpdateCharacterRequest struct {
	Name             *string   `json:"name,omitempty"`
	LastName         *string   `json:"last_name,omitempty"`
	Title            *string   `json:"title,omitempty"`
	CustomRace       *string   `json:"custom_race,omitempty"`
	RaceID           *int64    `json:"race_id,omitempty"`
	Class            *string   `json:"class,omitempty"`
	Faction          *string   `json:"faction,omitempty"`
	Alignment        *string   `json:"alignment,omitempty"`
	Background       *string   `json:"background,omitempty"`
	Description      *string   `json:"description,omitempty"`
	MainImage        *string   `json:"main_image,omitempty"`
	HeaderBackground *string   `json:"header_background,omitempty"`
	Images           *[]string `json:"images,omitempty"`
	Videos           *[]string `json:"videos,omitempty"`
	PlaceIDs         *[]int64  `json:"place_ids,omitempty"`
}

// ApplyTo copies the provided scalar fields onto the model. List columns and
// race resolution stay with the service.
func (r UpdateCharacterRequest) ApplyTo(c *models.Character) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.LastName != nil {
		c.LastName = r.LastName
	}
	if r.Title != nil {
		c.Title = r.Title
	}
	if r.Class != nil {
		c.Class = r.Class
	}
	if r.Faction != nil {
		c.Faction = r.Faction
	}
	if r.Alignment != nil {
		c.Alignment = r.Alignment
	}
	if r.Background != nil {
		c.Background = r.Background
	}
	if r.Description != nil {
		c.Description = r.Description
	}
	if r.MainImage != nil {
		c.MainImage = r.MainImage
	}
	if r.HeaderBackground != nil {
		c.HeaderBackground = r.HeaderBackground
	}
}
