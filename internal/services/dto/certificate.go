package dto

import (
	"time"

	"vinixport_backend/internal/models"
)

type CreateCertificateRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Issuer   string `json:"issuer" validate:"max=255"`
	Date     string `json:"date" validate:"max=50"`
	ImageURL string `json:"imageUrl" validate:"omitempty,image-ref"`
}

type CertificateResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Issuer    string    `json:"issuer"`
	Date      string    `json:"date"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCertificateResponse(c *models.Certificate) CertificateResponse {
	return CertificateResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Title:     c.Title,
		Issuer:    c.Issuer,
		Date:      c.Date,
		ImageURL:  c.ImageURL,
		CreatedAt: c.CreatedAt,
	}
}
