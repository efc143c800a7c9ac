package services

import (
	"context"
	"errors"

	"vinixport_backend/internal/models"
	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/services/dto"
	"vinixport_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CertificateService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateCertificateRequest) (*dto.CertificateResponse, error)
	ListMine(ctx context.Context, db *gorm.DB, userID string) ([]dto.CertificateResponse, error)
	Delete(ctx context.Context, db *gorm.DB, userID, certificateID string) error
}

type certificateService struct {
	certificateRepo repositories.CertificateRepository
	media           MediaService
}

func NewCertificateService(certificateRepo repositories.CertificateRepository, media MediaService) CertificateService {
	return &certificateService{certificateRepo: certificateRepo, media: media}
}

func (s *certificateService) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateCertificateRequest) (*dto.CertificateResponse, error) {
	imageURL, err := s.media.ResolveImage(ctx, userID, MediaCertificate, req.ImageURL)
	if err != nil {
		return nil, err
	}

	cert := &models.Certificate{
		UserID:   userID,
		Title:    req.Title,
		Issuer:   req.Issuer,
		Date:     req.Date,
		ImageURL: imageURL,
	}
	if err := s.certificateRepo.Create(db.WithContext(ctx), cert); err != nil {
		return nil, apperrors.StoreError(err)
	}

	resp := dto.NewCertificateResponse(cert)
	return &resp, nil
}

func (s *certificateService) ListMine(ctx context.Context, db *gorm.DB, userID string) ([]dto.CertificateResponse, error) {
	certs, err := s.certificateRepo.FindByUser(db.WithContext(ctx), userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	out := make([]dto.CertificateResponse, 0, len(certs))
	for i := range certs {
		out = append(out, dto.NewCertificateResponse(&certs[i]))
	}
	return out, nil
}

func (s *certificateService) Delete(ctx context.Context, db *gorm.DB, userID, certificateID string) error {
	err := s.certificateRepo.Delete(db.WithContext(ctx), userID, certificateID)
	if errors.Is(err, repositories.ErrCertificateNotFound) {
		return apperrors.ErrCertificateNotFound
	}
	if err != nil {
		return apperrors.StoreError(err)
	}
	return nil
}
