package dto

import (
	"time"

	"vinixport_backend/internal/models"

	"github.com/shopspring/decimal"
)

type SubmitReviewRequest struct {
	MenteeName         string           `json:"menteeName" validate:"required,max=255"`
	MenteeEmail        string           `json:"menteeEmail" validate:"required,email"`
	PortfolioURL       string           `json:"portfolioUrl" validate:"required,http-url"`
	Notes              *string          `json:"notes" validate:"omitempty,max=5000"`
	PaymentAmount      *decimal.Decimal `json:"paymentAmount" validate:"omitempty,gte=0"`
	PaymentBank        *string          `json:"paymentBank" validate:"omitempty,max=100"`
	PaymentAccountName *string          `json:"paymentAccountName" validate:"omitempty,max=255"`
	PaymentProofImage  *string          `json:"paymentProofImage" validate:"omitempty,image-ref"`
}

type CompleteReviewRequest struct {
	Feedback string `json:"feedback" validate:"max=20000"`
}

type ReviewRequestResponse struct {
	ID                 string           `json:"id"`
	MenteeID           string           `json:"menteeId"`
	MenteeName         string           `json:"menteeName"`
	MenteeEmail        string           `json:"menteeEmail"`
	PortfolioURL       string           `json:"portfolioUrl"`
	Notes              *string          `json:"notes"`
	PaymentAmount      *decimal.Decimal `json:"paymentAmount"`
	PaymentBank        *string          `json:"paymentBank"`
	PaymentAccountName *string          `json:"paymentAccountName"`
	PaymentProofImage  *string          `json:"paymentProofImage"`
	PaymentStatus      string           `json:"paymentStatus"`
	Status             string           `json:"status"`
	MentorFeedback     *string          `json:"mentorFeedback"`
	ReviewedBy         *string          `json:"reviewedBy,omitempty"`
	CompletedBy        *string          `json:"completedBy,omitempty"`
	PaymentVerifiedAt  *time.Time       `json:"paymentVerifiedAt,omitempty"`
	CompletedAt        *time.Time       `json:"completedAt,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`

	// Текущие имя и email ментии (только в списке для ментора)
	UserName  *string `json:"userName,omitempty"`
	UserEmail *string `json:"userEmail,omitempty"`
}

// TransitionResponse - ответ на подтверждение/отклонение оплаты
type TransitionResponse struct {
	Message string                 `json:"message"`
	Request *ReviewRequestResponse `json:"request"`
}

func NewReviewRequestResponse(r *models.ReviewRequest) *ReviewRequestResponse {
	return &ReviewRequestResponse{
		ID:                 r.ID,
		MenteeID:           r.MenteeID,
		MenteeName:         r.MenteeName,
		MenteeEmail:        r.MenteeEmail,
		PortfolioURL:       r.PortfolioURL,
		Notes:              r.Notes,
		PaymentAmount:      r.PaymentAmount,
		PaymentBank:        r.PaymentBank,
		PaymentAccountName: r.PaymentAccountName,
		PaymentProofImage:  r.PaymentProofImage,
		PaymentStatus:      string(r.PaymentStatus),
		Status:             string(r.Status),
		MentorFeedback:     r.MentorFeedback,
		ReviewedBy:         r.ReviewedBy,
		CompletedBy:        r.CompletedBy,
		PaymentVerifiedAt:  r.PaymentVerifiedAt,
		CompletedAt:        r.CompletedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func NewReviewRequestWithMenteeResponse(r *models.ReviewRequestWithMentee) *ReviewRequestResponse {
	resp := NewReviewRequestResponse(&r.ReviewRequest)
	resp.UserName = r.MenteeDisplayName
	resp.UserEmail = r.MenteeDisplayEmail
	return resp
}
