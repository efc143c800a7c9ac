package services

import (
	"context"

	"vinixport_backend/internal/repositories"
	"vinixport_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AccessGate решает, можно ли показывать портфолио.
// Открыто, если у ментии есть хотя бы одна заявка с подтвержденной оплатой.
// Кэша нет: каждый вызов читает БД, поэтому переход виден сразу.
type AccessGate interface {
	CanViewPortfolio(ctx context.Context, db *gorm.DB, menteeID string) (bool, error)
}

type accessGate struct {
	reviewRepo repositories.ReviewRequestRepository
}

func NewAccessGate(reviewRepo repositories.ReviewRequestRepository) AccessGate {
	return &accessGate{reviewRepo: reviewRepo}
}

func (g *accessGate) CanViewPortfolio(ctx context.Context, db *gorm.DB, menteeID string) (bool, error) {
	if menteeID == "" {
		return false, nil
	}
	ok, err := g.reviewRepo.HasApprovedPayment(db.WithContext(ctx), menteeID)
	if err != nil {
		return false, apperrors.StoreError(err)
	}
	return ok, nil
}
