package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoadmapStatusPlanned    = "planned"
	RoadmapStatusInProgress = "in_progress"
	RoadmapStatusCompleted  = "completed"
)

type RoadmapItem struct {
	ID          int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string                      `json:"title" gorm:"not null"`
	Description *string                     `json:"description,omitempty" gorm:"type:text"`
	Status      string                      `json:"status" gorm:"default:'planned';not null"`
	Progress    int                         `json:"progress" gorm:"default:0;not null"`
	Category    string                      `json:"category" gorm:"not null"`
	Version     *string                     `json:"version,omitempty"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	AuthorID    string                      `json:"author_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (RoadmapItem) TableName() string {
	return "roadmap_items"
}

func (i *RoadmapItem) OwnerID() string {
	return i.AuthorID
}
