package models

import (
	"time"

	"gorm.io/datatypes"
)

type DevblogPost struct {
	ID        int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string                      `json:"title" gorm:"not null"`
	Content   string                      `json:"content" gorm:"not null;type:text"`
	Excerpt   *string                     `json:"excerpt,omitempty" gorm:"type:text"`
	Published bool                        `json:"published" gorm:"default:false;not null"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	AuthorID  string                      `json:"author_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (DevblogPost) TableName() string {
	return "devblog_posts"
}

func (p *DevblogPost) OwnerID() string {
	return p.AuthorID
}

func (p *DevblogPost) IsPublished() bool {
	return p.Published
}
