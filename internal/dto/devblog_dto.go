package dto

import "loreforge/internal/models"

type CreateDevblogPostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   *string  `json:"excerpt,omitempty"`
	Published bool     `json:"published"`
	Tags      []string `json:"tags,omitempty"`
}

func (r CreateDevblogPostRequest) ToModel() models.DevblogPost {
	return models.DevblogPost{
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		Published: r.Published,
	}
}

type UpdateDevblogPostRequest struct {
	Title     *string   `json:"title,omitempty"`
	Content   *string   `json:"content,omitempty"`
	Excerpt   *string   `json:"excerpt,omitempty"`
	Published *bool     `json:"published,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
}

func (r UpdateDevblogPostRequest) ApplyTo(p *models.DevblogPost) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Content != nil {
		p.Content = *r.Content
	}
	if r.Excerpt != nil {
		p.Excerpt = r.Excerpt
	}
	if r.Published != nil {
		p.Published = *r.Published
	}
}
