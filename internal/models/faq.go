package models

import "time"

type FAQItem struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Question  string    `json:"question" gorm:"not null;type:text"`
	Answer    string    `json:"answer" gorm:"not null;type:text"`
	Category  string    `json:"category" gorm:"not null"`
	AuthorID  string    `json:"author_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (FAQItem) TableName() string {
	return "faq_items"
}

func (i *FAQItem) OwnerID() string {
	return i.AuthorID
}
