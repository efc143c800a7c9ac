package dto

import (
	"time"

	"vinixport_backend/internal/models"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateProfileRequest - все поля опциональны, nil означает "не менять"
type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Title     *string `json:"title" validate:"omitempty,max=255"`
	Bio       *string `json:"bio" validate:"omitempty,max=5000"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,image-ref"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Title:     u.Title,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}
