package models

import (
	"time"

	"gorm.io/datatypes"
)

// Story carries a draft/published lifecycle. The transition is a single
// boolean flip through Update and works in both directions.
type Story struct {
	ID        int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string                      `json:"title" gorm:"not null"`
	Summary   *string                     `json:"summary,omitempty" gorm:"type:text"`
	Content   string                      `json:"content" gorm:"not null;type:text"`
	MainImage *string                     `json:"main_image,omitempty"`
	Images    datatypes.JSONSlice[string] `json:"images"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	Published bool                        `json:"published" gorm:"default:false;not null"`
	AuthorID  string                      `json:"author_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`

	Author     *User       `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Characters []Character `json:"characters,omitempty" gorm:"many2many:story_characters;"`
	Places     []Place     `json:"places,omitempty" gorm:"many2many:story_places;"`
}

func (Story) TableName() string {
	return "stories"
}

func (s *Story) OwnerID() string {
	return s.AuthorID
}

func (s *Story) IsPublished() bool {
	return s.Published
}
