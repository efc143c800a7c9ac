package services

import (
	"context"
	"errors"
	"strings"

	"vinixport_backend/internal/auth"
	"vinixport_backend/internal/events"
	"vinixport_backend/internal/logger"
	"vinixport_backend/internal/metrics"
	"vinixport_backend/internal/models"
	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/services/dto"
	"vinixport_backend/internal/validator"
	"vinixport_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	transitionSubmit   = "submit"
	transitionApprove  = "approve_payment"
	transitionReject   = "reject_payment"
	transitionComplete = "complete"
)

// ReviewRequestService - жизненный цикл заявки на ревью.
// Все операции принимают проверенный Principal, а не id из запроса.
type ReviewRequestService interface {
	Submit(ctx context.Context, db *gorm.DB, p auth.Principal, req *dto.SubmitReviewRequest) (*dto.ReviewRequestResponse, error)
	ApprovePayment(ctx context.Context, db *gorm.DB, p auth.Principal, requestID string) (*dto.ReviewRequestResponse, error)
	RejectPayment(ctx context.Context, db *gorm.DB, p auth.Principal, requestID string) (*dto.ReviewRequestResponse, error)
	CompleteReview(ctx context.Context, db *gorm.DB, p auth.Principal, requestID, feedback string) (*dto.ReviewRequestResponse, error)
	List(ctx context.Context, db *gorm.DB, p auth.Principal) ([]*dto.ReviewRequestResponse, error)
	Get(ctx context.Context, db *gorm.DB, p auth.Principal, requestID string) (*dto.ReviewRequestResponse, error)
}

type reviewRequestService struct {
	reviewRepo repositories.ReviewRequestRepository
	userRepo   repositories.UserRepository
	media      MediaService
	notifier   *ReviewNotifier
	validator  *validator.Validator
	metrics    *metrics.Metrics
}

func NewReviewRequestService(
	reviewRepo repositories.ReviewRequestRepository,
	userRepo repositories.UserRepository,
	media MediaService,
	notifier *ReviewNotifier,
	v *validator.Validator,
	m *metrics.Metrics,
) ReviewRequestService {
	if notifier == nil {
		notifier = NewReviewNotifier(nil, nil, m)
	}
	if v == nil {
		v = validator.New()
	}
	return &reviewRequestService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		media:      media,
		notifier:   notifier,
		validator:  v,
		metrics:    m,
	}
}

func (s *reviewRequestService) Submit(ctx context.Context, db *gorm.DB, p auth.Principal, req *dto.SubmitReviewRequest) (*dto.ReviewRequestResponse, error) {
	if p.IsZero() {
		return nil, apperrors.ErrAuthRequired
	}
	if !auth.CanSubmitReviewRequest(p.Role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	req.MenteeName = strings.TrimSpace(req.MenteeName)
	req.MenteeEmail = strings.TrimSpace(req.MenteeEmail)
	req.PortfolioURL = strings.TrimSpace(req.PortfolioURL)
	if err := s.validator.Validate(req); err != nil {
		return nil, toValidationError(err)
	}

	db = db.WithContext(ctx)
	exists, err := s.userRepo.Exists(db, p.UserID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	if !exists {
		return nil, apperrors.ErrMenteeUnresolvable
	}

	request := &models.ReviewRequest{
		MenteeID:           p.UserID,
		MenteeName:         req.MenteeName,
		MenteeEmail:        req.MenteeEmail,
		PortfolioURL:       req.PortfolioURL,
		Notes:              req.Notes,
		PaymentAmount:      req.PaymentAmount,
		PaymentBank:        req.PaymentBank,
		PaymentAccountName: req.PaymentAccountName,
	}

	// чек, загруженный из data URL, удаляется, если заявку не удалось сохранить
	storedProof := ""
	if req.PaymentProofImage != nil && *req.PaymentProofImage != "" {
		url, err := s.media.ResolveImage(ctx, p.UserID, MediaPaymentProof, *req.PaymentProofImage)
		if err != nil {
			return nil, err
		}
		request.PaymentProofImage = &url
		if validator.IsDataURL(strings.TrimSpace(*req.PaymentProofImage)) {
			storedProof = url
		}
	}

	if err := s.reviewRepo.Create(db, request); err != nil {
		s.metrics.ObserveTransition(transitionSubmit, "error")
		if storedProof != "" {
			s.media.DiscardImage(ctx, p.UserID, MediaPaymentProof, storedProof)
		}
		return nil, apperrors.StoreError(err)
	}

	s.metrics.ObserveTransition(transitionSubmit, "ok")
	logger.TransitionLog(request.ID, p.UserID, transitionSubmit, "", string(request.PaymentStatus))
	s.notifier.Notify(ctx, events.ReviewRequestSubmitted, request, p.UserID)

	return dto.NewReviewRequestResponse(request), nil
}

func (s *reviewRequestService) ApprovePayment(ctx context.Context, db *gorm.DB, p auth.Principal, requestID string) (*dto.ReviewRequestResponse, error) {
	if err := requireReviewer(p); err != nil {
		return nil, err
	}

	request, changed, err := s.reviewRepo.ApprovePayment(db.WithContext(ctx), requestID, p.UserID)
	if err != nil {
		s.metrics.ObserveTransition(transitionApprove, outcomeOf(err))
		return nil, handleReviewRequestError(err)
	}
	if !changed {
		s.metrics.ObserveTransition(transitionApprove, "noop")
		return dto.NewReviewRequestResponse(request), nil
	}

	s.metrics.ObserveTransition(transitionApprove, "ok")
	logger.TransitionLog(request.ID, p.UserID, transitionApprove, string(models.PaymentStatusWaitingVerification), string(request.PaymentStatus))
	s.notifier.Notify(ctx, events.PaymentApproved, request, p.UserID)

	return dto.NewReviewRequestResponse(request), nil
}

func (s *reviewRequestService) RejectPayment(ctx context.Context, db *gorm.DB, p auth.Principal, requestID string) (*dto.ReviewRequestResponse, error) {
	if err := requireReviewer(p); err != nil {
		return nil, err
	}

	request, changed, err := s.reviewRepo.RejectPayment(db.WithContext(ctx), requestID, p.UserID)
	if err != nil {
		s.metrics.ObserveTransition(transitionReject, outcomeOf(err))
		return nil, handleReviewRequestError(err)
	}
	if !changed {
		s.metrics.ObserveTransition(transitionReject, "noop")
		return dto.NewReviewRequestResponse(request), nil
	}

	s.metrics.ObserveTransition(transitionReject, "ok")
	logger.TransitionLog(request.ID, p.UserID, transitionReject, string(models.PaymentStatusWaitingVerification), string(request.PaymentStatus))
	s.notifier.Notify(ctx, events.PaymentRejected, request, p.UserID)

	return dto.NewReviewRequestResponse(request), nil
}

func (s *reviewRequestService) CompleteReview(ctx context.Context, db *gorm.DB, p auth.Principal, requestID, feedback string) (*dto.ReviewRequestResponse, error) {
	if p.IsZero() {
		return nil, apperrors.ErrAuthRequired
	}
	if !auth.CanCompleteReviews(p.Role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	request, err := s.reviewRepo.CompleteReview(db.WithContext(ctx), requestID, p.UserID, feedback)
	if err != nil {
		s.metrics.ObserveTransition(transitionComplete, outcomeOf(err))
		return nil, handleReviewRequestError(err)
	}

	s.metrics.ObserveTransition(transitionComplete, "ok")
	logger.TransitionLog(request.ID, p.UserID, transitionComplete, string(models.ReviewStatusInProgress), string(request.Status))
	s.notifier.Notify(ctx, events.ReviewCompleted, request, p.UserID)

	return dto.NewReviewRequestResponse(request), nil
}

func (s *reviewRequestService) List(ctx context.Context, db *gorm.DB, p auth.Principal) ([]*dto.ReviewRequestResponse, error) {
	if p.IsZero() {
		return nil, apperrors.ErrAuthRequired
	}
	db = db.WithContext(ctx)

	if auth.SeesAllReviewRequests(p.Role) {
		rows, err := s.reviewRepo.FindAll(db)
		if err != nil {
			return nil, apperrors.StoreError(err)
		}
		out := make([]*dto.ReviewRequestResponse, 0, len(rows))
		for i := range rows {
			out = append(out, dto.NewReviewRequestWithMenteeResponse(&rows[i]))
		}
		return out, nil
	}

	rows, err := s.reviewRepo.FindByMentee(db, p.UserID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	out := make([]*dto.ReviewRequestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewReviewRequestResponse(&rows[i]))
	}
	return out, nil
}

// Get: чужая заявка для ментии выглядит как несуществующая
func (s *reviewRequestService) Get(ctx context.Context, db *gorm.DB, p auth.Principal, requestID string) (*dto.ReviewRequestResponse, error) {
	if p.IsZero() {
		return nil, apperrors.ErrAuthRequired
	}

	request, err := s.reviewRepo.FindByID(db.WithContext(ctx), requestID)
	if err != nil {
		return nil, handleReviewRequestError(err)
	}
	if !auth.SeesAllReviewRequests(p.Role) && request.MenteeID != p.UserID {
		return nil, apperrors.ErrReviewRequestNotFound
	}
	return dto.NewReviewRequestResponse(request), nil
}

func requireReviewer(p auth.Principal) error {
	if p.IsZero() {
		return apperrors.ErrAuthRequired
	}
	if !auth.CanReviewPayments(p.Role) {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}

func handleReviewRequestError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrReviewRequestNotFound):
		return apperrors.ErrReviewRequestNotFound
	case errors.Is(err, repositories.ErrPaymentNotApproved):
		return apperrors.ErrPaymentNotApproved
	case errors.Is(err, repositories.ErrPaymentRejected):
		return apperrors.ErrPaymentRejected
	case errors.Is(err, repositories.ErrPaymentAlreadyApproved):
		return apperrors.ErrPaymentAlreadyApproved
	case errors.Is(err, repositories.ErrReviewAlreadyCompleted):
		return apperrors.ErrReviewAlreadyCompleted
	default:
		return apperrors.StoreError(err)
	}
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, repositories.ErrReviewRequestNotFound):
		return "not_found"
	case errors.Is(err, repositories.ErrPaymentNotApproved),
		errors.Is(err, repositories.ErrPaymentRejected),
		errors.Is(err, repositories.ErrPaymentAlreadyApproved),
		errors.Is(err, repositories.ErrReviewAlreadyCompleted):
		return "precondition"
	default:
		return "error"
	}
}

// toValidationError переводит ошибку валидатора в AppError с деталями по полям
func toValidationError(err error) error {
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		return apperrors.ValidationError(vErr.Errors)
	}
	return apperrors.NewBadRequestError(err.Error())
}
