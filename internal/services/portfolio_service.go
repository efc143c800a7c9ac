package services

import (
	"context"
	"errors"

	"vinixport_backend/internal/metrics"
	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/services/dto"
	"vinixport_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PortfolioService interface {
	// GetPortfolio: пользователь существует? -> оплата подтверждена? -> сборка ответа.
	// Закрытое портфолио не отдает никаких частичных данных.
	GetPortfolio(ctx context.Context, db *gorm.DB, userID string) (*dto.PortfolioResponse, error)
	ListApprovedPortfolios(ctx context.Context, db *gorm.DB) ([]dto.PortfolioCard, error)
}

type portfolioService struct {
	userRepo        repositories.UserRepository
	projectRepo     repositories.ProjectRepository
	certificateRepo repositories.CertificateRepository
	reviewRepo      repositories.ReviewRequestRepository
	gate            AccessGate
	metrics         *metrics.Metrics
}

func NewPortfolioService(
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	certificateRepo repositories.CertificateRepository,
	reviewRepo repositories.ReviewRequestRepository,
	gate AccessGate,
	m *metrics.Metrics,
) PortfolioService {
	return &portfolioService{
		userRepo:        userRepo,
		projectRepo:     projectRepo,
		certificateRepo: certificateRepo,
		reviewRepo:      reviewRepo,
		gate:            gate,
		metrics:         m,
	}
}

func (s *portfolioService) GetPortfolio(ctx context.Context, db *gorm.DB, userID string) (*dto.PortfolioResponse, error) {
	db = db.WithContext(ctx)

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.ObservePortfolioView("not_found")
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.StoreError(err)
	}

	allowed, err := s.gate.CanViewPortfolio(ctx, db, user.ID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		s.metrics.ObservePortfolioView("locked")
		return nil, apperrors.ErrPortfolioLocked
	}

	projects, err := s.projectRepo.FindByUser(db, user.ID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	certificates, err := s.certificateRepo.FindByUser(db, user.ID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	resp := &dto.PortfolioResponse{
		User: dto.PortfolioUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			AvatarURL: user.AvatarURL,
			Title:     user.Title,
			Bio:       user.Bio,
			Role:      string(user.Role),
		},
		Projects:     make([]dto.ProjectResponse, 0, len(projects)),
		Certificates: make([]dto.CertificateResponse, 0, len(certificates)),
	}
	for i := range projects {
		resp.Projects = append(resp.Projects, dto.NewProjectResponse(&projects[i]))
	}
	for i := range certificates {
		resp.Certificates = append(resp.Certificates, dto.NewCertificateResponse(&certificates[i]))
	}

	s.metrics.ObservePortfolioView("ok")
	return resp, nil
}

func (s *portfolioService) ListApprovedPortfolios(ctx context.Context, db *gorm.DB) ([]dto.PortfolioCard, error) {
	db = db.WithContext(ctx)

	ids, err := s.reviewRepo.FindApprovedMenteeIDs(db)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	users, err := s.userRepo.FindByIDs(db, ids)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	cards := make([]dto.PortfolioCard, 0, len(users))
	for _, u := range users {
		cards = append(cards, dto.PortfolioCard{
			ID:        u.ID,
			Name:      u.Name,
			AvatarURL: u.AvatarURL,
			Title:     u.Title,
			Bio:       u.Bio,
		})
	}
	return cards, nil
}
