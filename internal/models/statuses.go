package models

type UserRole string
type PaymentStatus string
type ReviewStatus string

const (
	// роль менти в БД хранится как "user"
	UserRoleMentee UserRole = "user"
	UserRoleMentor UserRole = "mentor"
	UserRoleAdmin  UserRole = "admin"

	PaymentStatusWaitingVerification PaymentStatus = "waiting_verification"
	PaymentStatusApproved            PaymentStatus = "approved"
	PaymentStatusRejected            PaymentStatus = "rejected"

	ReviewStatusPending    ReviewStatus = "pending"
	ReviewStatusInProgress ReviewStatus = "in_progress"
	ReviewStatusCompleted  ReviewStatus = "completed"
)

// Valid сообщает, является ли роль одной из известных
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleMentee, UserRoleMentor, UserRoleAdmin:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusWaitingVerification, PaymentStatusApproved, PaymentStatusRejected:
		return true
	default:
		return false
	}
}

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusInProgress, ReviewStatusCompleted:
		return true
	default:
		return false
	}
}
