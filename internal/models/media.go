package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MediaTypeImage   = "image"
	MediaTypeVideo   = "video"
	MediaTypeArtwork = "artwork"
	MediaTypeConcept = "concept"
)

type MediaItem struct {
	ID          int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string                      `json:"title" gorm:"not null"`
	Description *string                     `json:"description,omitempty" gorm:"type:text"`
	Type        string                      `json:"type" gorm:"default:'image';not null"`
	URL         string                      `json:"url" gorm:"not null"`
	Thumbnail   *string                     `json:"thumbnail,omitempty"`
	Width       *int                        `json:"width,omitempty"`
	Height      *int                        `json:"height,omitempty"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	AuthorID    string                      `json:"author_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (MediaItem) TableName() string {
	return "media_items"
}

func (m *MediaItem) OwnerID() string {
	return m.AuthorID
}
