package dto

import "loreforge/internal/models"

type CreateFAQItemRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

func (r CreateFAQItemRequest) ToModel() models.FAQItem {
	return models.FAQItem{
		Question: r.Question,
		Answer:   r.Answer,
		Category: r.Category,
	}
}

type UpdateFAQItemRequest struct {
	Question *string `json:"question,omitempty"`
	Answer   *string `json:"answer,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (r UpdateFAQItemRequest) ApplyTo(i *models.FAQItem) {
	if r.Question != nil {
		i.Question = *r.Question
	}
	if r.Answer != nil {
		i.Answer = *r.Answer
	}
	if r.Category != nil {
		i.Category = *r.Category
	}
}
