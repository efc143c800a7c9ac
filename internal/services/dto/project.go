package dto

import (
	"time"

	"vinixport_backend/internal/models"
)

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"max=10000"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,image-ref"`
	Link        string   `json:"link" validate:"omitempty,http-url"`
	Tags        []string `json:"tags" validate:"max=30,dive,max=50"`
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string   `json:"description" validate:"omitempty,max=10000"`
	ImageURL    *string   `json:"imageUrl" validate:"omitempty,image-ref"`
	Link        *string   `json:"link" validate:"omitempty,http-url"`
	Tags        *[]string `json:"tags" validate:"omitempty,max=30,dive,max=50"`
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Link        string    `json:"link"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewProjectResponse отдает теги уже нормализованными
func NewProjectResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Link:        p.Link,
		Tags:        p.TagList(),
		CreatedAt:   p.CreatedAt,
	}
}
