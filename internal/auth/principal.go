package auth

import "vinixport_backend/internal/models"

// Principal - аутентифицированный вызывающий
type Principal struct {
	UserID string
	Role   models.UserRole
}

func (p Principal) IsZero() bool {
	return p.UserID == ""
}

func (p Principal) IsMentee() bool {
	return p.Role == models.UserRoleMentee
}

func (p Principal) IsMentor() bool {
	return p.Role == models.UserRoleMentor
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.UserRoleAdmin
}
