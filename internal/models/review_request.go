package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReviewRequest - запись леджера: заявка ментии на ревью с ручной проверкой оплаты.
// Статус ревью и статус оплаты меняются независимо друг от друга.
type ReviewRequest struct {
	BaseModel
	MenteeID           string               `gorm:"type:varchar(36);not null;index:idx_review_requests_mentee_payment,priority:1"`
	MenteeName         string               `gorm:"type:varchar(255);not null"`
	MenteeEmail        string               `gorm:"type:varchar(255);not null"`
	PortfolioURL       string               `gorm:"column:portfolio_url;type:text;not null"`
	Notes              *string              `gorm:"type:text"`
	PaymentAmount      *decimal.Decimal     `gorm:"type:decimal(20,2)"`
	PaymentBank        *string              `gorm:"type:varchar(100)"`
	PaymentAccountName *string              `gorm:"type:varchar(255)"`
	PaymentProofImage  *string              `gorm:"type:text"`
	PaymentStatus      PaymentStatus        `gorm:"type:varchar(30);not null;default:'waiting_verification';index:idx_review_requests_mentee_payment,priority:2"`
	Status             ReviewStatus         `gorm:"type:varchar(20);not null;default:'pending'"`
	MentorFeedback     *string              `gorm:"type:text"`
	ReviewedBy         *string              `gorm:"type:varchar(36)"`
	CompletedBy        *string              `gorm:"type:varchar(36)"`
	PaymentVerifiedAt  *time.Time
	CompletedAt        *time.Time

	Mentee *User `gorm:"foreignKey:MenteeID"`
}

// ReviewRequestWithMentee - строка списка для ментора: заявка плюс
// текущие имя и email ментии из таблицы users.
type ReviewRequestWithMentee struct {
	ReviewRequest
	MenteeDisplayName  *string
	MenteeDisplayEmail *string
}
