package models

import (
	"time"

	"gorm.io/datatypes"
)

type Place struct {
	ID          int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string                      `json:"name" gorm:"not null"`
	Description *string                     `json:"description,omitempty" gorm:"type:text"`
	Content     *string                     `json:"content,omitempty" gorm:"type:text"`
	MainImage   *string                     `json:"main_image,omitempty"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	AuthorID    string                      `json:"author_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`

	Author     *User       `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Characters []Character `json:"characters,omitempty" gorm:"many2many:character_places;"`
	Stories    []Story     `json:"stories,omitempty" gorm:"many2many:story_places;"`
}

func (Place) TableName() string {
	return "places"
}

func (p *Place) OwnerID() string {
	return p.AuthorID
}
