package auth

import (
	"errors"

	"vinixport_backend/internal/models"
)

var ErrInvalidRole = errors.New("invalid role")

// CanSubmitReviewRequest - заявки подают только менти
func CanSubmitReviewRequest(role models.UserRole) bool {
	switch role {
	case models.UserRoleMentee:
		return true
	case models.UserRoleMentor, models.UserRoleAdmin:
		return false
	default:
		return false
	}
}

// CanReviewPayments - подтверждение и отклонение оплаты
func CanReviewPayments(role models.UserRole) bool {
	switch role {
	case models.UserRoleMentor, models.UserRoleAdmin:
		return true
	case models.UserRoleMentee:
		return false
	default:
		return false
	}
}

// CanCompleteReviews - фидбек пишет только ментор
func CanCompleteReviews(role models.UserRole) bool {
	switch role {
	case models.UserRoleMentor:
		return true
	case models.UserRoleMentee, models.UserRoleAdmin:
		return false
	default:
		return false
	}
}

// SeesAllReviewRequests - менти видит только свои заявки
func SeesAllReviewRequests(role models.UserRole) bool {
	switch role {
	case models.UserRoleMentor, models.UserRoleAdmin:
		return true
	case models.UserRoleMentee:
		return false
	default:
		return false
	}
}

// ValidateSignupRole - через регистрацию нельзя стать админом
func ValidateSignupRole(role models.UserRole, allowMentor bool) error {
	switch role {
	case models.UserRoleMentee:
		return nil
	case models.UserRoleMentor:
		if allowMentor {
			return nil
		}
		return ErrInvalidRole
	case models.UserRoleAdmin:
		return ErrInvalidRole
	default:
		return ErrInvalidRole
	}
}
