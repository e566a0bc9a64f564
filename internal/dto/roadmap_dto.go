package dto

import "loreforge/internal/models"

type CreateRoadmapItemRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Progress    *int     `json:"progress,omitempty"`
	Category    string   `json:"category"`
	Version     *string  `json:"version,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (r CreateRoadmapItemRequest) ToModel() models.RoadmapItem {
	item := models.RoadmapItem{
		Title:       r.Title,
		Description: r.Description,
		Status:      models.RoadmapStatusPlanned,
		Category:    r.Category,
		Version:     r.Version,
	}
	if r.Status != nil {
		item.Status = *r.Status
	}
	if r.Progress != nil {
		item.Progress = *r.Progress
	}
	return item
}

type UpdateRoadmapItemRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Progress    *int      `json:"progress,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Version     *string   `json:"version,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

func (r UpdateRoadmapItemRequest) ApplyTo(i *models.RoadmapItem) {
	if r.Title != nil {
		i.Title = *r.Title
	}
	if r.Description != nil {
		i.Description = r.Description
	}
	if r.Status != nil {
		i.Status = *r.Status
	}
	if r.Progress != nil {
		i.Progress = *r.Progress
	}
	if r.Category != nil {
		i.Category = *r.Category
	}
	if r.Version != nil {
		i.Version = r.Version
	}
}
