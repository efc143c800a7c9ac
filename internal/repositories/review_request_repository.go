package repositories

import (
	"errors"
	"time"

	"vinixport_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewRequestNotFound  = errors.New("review request not found")
	ErrPaymentNotApproved     = errors.New("payment is not approved")
	ErrPaymentRejected        = errors.New("payment was rejected")
	ErrPaymentAlreadyApproved = errors.New("payment is already approved")
	ErrReviewAlreadyCompleted = errors.New("review is already completed")
)

// ReviewRequestRepository - леджер заявок на ревью.
// Каждый переход - один условный UPDATE по одной строке; конкурентные
// вызовы для одной заявки сериализует сама СУБД.
type ReviewRequestRepository interface {
	Create(db *gorm.DB, request *models.ReviewRequest) error
	FindByID(db *gorm.DB, id string) (*models.ReviewRequest, error)
	FindByMentee(db *gorm.DB, menteeID string) ([]models.ReviewRequest, error)
	FindAll(db *gorm.DB) ([]models.ReviewRequestWithMentee, error)

	// changed=false означает повторный вызов: строка уже была в целевом состоянии
	ApprovePayment(db *gorm.DB, id, reviewerID string) (request *models.ReviewRequest, changed bool, err error)
	RejectPayment(db *gorm.DB, id, reviewerID string) (request *models.ReviewRequest, changed bool, err error)
	CompleteReview(db *gorm.DB, id, mentorID, feedback string) (*models.ReviewRequest, error)

	HasApprovedPayment(db *gorm.DB, menteeID string) (bool, error)
	FindApprovedMenteeIDs(db *gorm.DB) ([]string, error)
	CountByPaymentStatus(db *gorm.DB, status models.PaymentStatus) (int64, error)
}

type ReviewRequestRepositoryImpl struct{}

func NewReviewRequestRepository() ReviewRequestRepository {
	return &ReviewRequestRepositoryImpl{}
}

func (r *ReviewRequestRepositoryImpl) Create(db *gorm.DB, request *models.ReviewRequest) error {
	request.Status = models.ReviewStatusPending
	request.PaymentStatus = models.PaymentStatusWaitingVerification
	request.MentorFeedback = nil
	return db.Create(request).Error
}

func (r *ReviewRequestRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ReviewRequest, error) {
	var request models.ReviewRequest
	if err := db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *ReviewRequestRepositoryImpl) FindByMentee(db *gorm.DB, menteeID string) ([]models.ReviewRequest, error) {
	var requests []models.ReviewRequest
	err := db.Where("mentee_id = ?", menteeID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&requests).Error
	return requests, err
}

func (r *ReviewRequestRepositoryImpl) FindAll(db *gorm.DB) ([]models.ReviewRequestWithMentee, error) {
	var rows []models.ReviewRequestWithMentee
	err := db.Model(&models.ReviewRequest{}).
		Select("review_requests.*, users.name AS mentee_display_name, users.email AS mentee_display_email").
		Joins("LEFT JOIN users ON users.id = review_requests.mentee_id").
		Order("review_requests.created_at DESC").
		Order("review_requests.id DESC").
		Scan(&rows).Error
	return rows, err
}

// ApprovePayment: waiting_verification -> approved, pending -> in_progress.
// Повторное подтверждение - успешный no-op.
func (r *ReviewRequestRepositoryImpl) ApprovePayment(db *gorm.DB, id, reviewerID string) (*models.ReviewRequest, bool, error) {
	now := time.Now()
	result := db.Model(&models.ReviewRequest{}).
		Where("id = ? AND payment_status = ?", id, models.PaymentStatusWaitingVerification).
		Updates(map[string]interface{}{
			"payment_status":      models.PaymentStatusApproved,
			"status":              gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END", models.ReviewStatusPending, models.ReviewStatusInProgress),
			"reviewed_by":         reviewerID,
			"payment_verified_at": now,
			"updated_at":          now,
		})
	if result.Error != nil {
		return nil, false, result.Error
	}

	current, err := r.FindByID(db, id)
	if err != nil {
		return nil, false, err
	}
	if result.RowsAffected > 0 {
		return current, true, nil
	}

	switch current.PaymentStatus {
	case models.PaymentStatusApproved:
		return current, false, nil
	case models.PaymentStatusRejected:
		return current, false, ErrPaymentRejected
	default:
		// Строка есть, но условие не сработало и статус не финальный:
		// такого быть не должно, отдаем как конфликт.
		return current, false, ErrPaymentNotApproved
	}
}

// RejectPayment: waiting_verification -> rejected. Статус ревью не меняется.
func (r *ReviewRequestRepositoryImpl) RejectPayment(db *gorm.DB, id, reviewerID string) (*models.ReviewRequest, bool, error) {
	now := time.Now()
	result := db.Model(&models.ReviewRequest{}).
		Where("id = ? AND payment_status = ?", id, models.PaymentStatusWaitingVerification).
		Updates(map[string]interface{}{
			"payment_status":      models.PaymentStatusRejected,
			"reviewed_by":         reviewerID,
			"payment_verified_at": now,
			"updated_at":          now,
		})
	if result.Error != nil {
		return nil, false, result.Error
	}

	current, err := r.FindByID(db, id)
	if err != nil {
		return nil, false, err
	}
	if result.RowsAffected > 0 {
		return current, true, nil
	}

	switch current.PaymentStatus {
	case models.PaymentStatusRejected:
		return current, false, nil
	case models.PaymentStatusApproved:
		return current, false, ErrPaymentAlreadyApproved
	default:
		return current, false, ErrPaymentNotApproved
	}
}

// CompleteReview - финальный переход. Отзыв ментора пишется только здесь.
func (r *ReviewRequestRepositoryImpl) CompleteReview(db *gorm.DB, id, mentorID, feedback string) (*models.ReviewRequest, error) {
	now := time.Now()
	result := db.Model(&models.ReviewRequest{}).
		Where("id = ? AND payment_status = ? AND status <> ?", id, models.PaymentStatusApproved, models.ReviewStatusCompleted).
		Updates(map[string]interface{}{
			"status":          models.ReviewStatusCompleted,
			"mentor_feedback": feedback,
			"completed_by":    mentorID,
			"completed_at":    now,
			"updated_at":      now,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	current, err := r.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected > 0 {
		return current, nil
	}

	if current.PaymentStatus != models.PaymentStatusApproved {
		return current, ErrPaymentNotApproved
	}
	return current, ErrReviewAlreadyCompleted
}

func (r *ReviewRequestRepositoryImpl) HasApprovedPayment(db *gorm.DB, menteeID string) (bool, error) {
	var ids []string
	err := db.Model(&models.ReviewRequest{}).
		Where("mentee_id = ? AND payment_status = ?", menteeID, models.PaymentStatusApproved).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

func (r *ReviewRequestRepositoryImpl) FindApprovedMenteeIDs(db *gorm.DB) ([]string, error) {
	var ids []string
	err := db.Model(&models.ReviewRequest{}).
		Where("payment_status = ?", models.PaymentStatusApproved).
		Distinct("mentee_id").
		Pluck("mentee_id", &ids).Error
	return ids, err
}

func (r *ReviewRequestRepositoryImpl) CountByPaymentStatus(db *gorm.DB, status models.PaymentStatus) (int64, error) {
	var count int64
	err := db.Model(&models.ReviewRequest{}).Where("payment_status = ?", status).Count(&count).Error
	return count, err
}
