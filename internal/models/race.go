package models

import "time"

// Race has no author; it is shared reference data maintained by admins.
type Race struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Characters []Character `json:"characters,omitempty" gorm:"foreignKey:RaceID"`
}

func (Race) TableName() string {
	return "races"
}

func (r *Race) OwnerID() string {
	return ""
}
