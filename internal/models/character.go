package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AlignmentGood    = "good"
	AlignmentNeutral = "neutral"
	AlignmentEvil    = "evil"
)

// Character is a wiki entry for a single figure of the game world. A character
// either links to a Race row via RaceID or carries a free-text CustomRace;
// the two are mutually exclusive and free text wins when both are supplied.
type Character struct {
	ID               int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string                      `json:"name" gorm:"not null"`
	LastName         *string                     `json:"last_name,omitempty"`
	Title            *string                     `json:"title,omitempty"`
	CustomRace       *string                     `json:"custom_race,omitempty"`
	RaceID           *int64                      `json:"race_id,omitempty" gorm:"index"`
	Class            *string                     `json:"class,omitempty"`
	Faction          *string                     `json:"faction,omitempty"`
	Alignment        *string                     `json:"alignment,omitempty"`
	Background       *string                     `json:"background,omitempty" gorm:"type:text"`
	Description      *string                     `json:"description,omitempty" gorm:"type:text"`
	MainImage        *string                     `json:"main_image,omitempty"`
	HeaderBackground *string                     `json:"header_background,omitempty"`
	Images           datatypes.JSONSlice[string] `json:"images"`
	Videos           datatypes.JSONSlice[string] `json:"videos"`
	AuthorID         string                      `json:"author_id" gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`

	// associations
	Race    *Race   `json:"race,omitempty" gorm:"foreignKey:RaceID"`
	Author  *User   `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Places  []Place `json:"places,omitempty" gorm:"many2many:character_places;"`
	Stories []Story `json:"stories,omitempty" gorm:"many2many:story_characters;"`
}

func (Character) TableName() string {
	return "characters"
}

func (c *Character) OwnerID() string {
	return c.AuthorID
}
