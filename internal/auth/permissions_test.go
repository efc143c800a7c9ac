package auth

import (
	"testing"

	"vinixport_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPermissions(t *testing.T) {
	unknown := models.UserRole("guest")

	tests := []struct {
		role      models.UserRole
		submit    bool
		reviewPay bool
		complete  bool
		seesAll   bool
	}{
		{models.UserRoleMentee, true, false, false, false},
		{models.UserRoleMentor, false, true, true, true},
		{models.UserRoleAdmin, false, true, false, true},
		{unknown, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.submit, CanSubmitReviewRequest(tt.role))
			assert.Equal(t, tt.reviewPay, CanReviewPayments(tt.role))
			assert.Equal(t, tt.complete, CanCompleteReviews(tt.role))
			assert.Equal(t, tt.seesAll, SeesAllReviewRequests(tt.role))
		})
	}
}

func TestValidateSignupRole(t *testing.T) {
	assert.NoError(t, ValidateSignupRole(models.UserRoleMentee, false))
	assert.ErrorIs(t, ValidateSignupRole(models.UserRoleMentor, false), ErrInvalidRole)
	assert.NoError(t, ValidateSignupRole(models.UserRoleMentor, true))
	assert.ErrorIs(t, ValidateSignupRole(models.UserRoleAdmin, true), ErrInvalidRole)
	assert.ErrorIs(t, ValidateSignupRole(models.UserRole("root"), true), ErrInvalidRole)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("password124", hash))

	assert.ErrorIs(t, ValidatePassword("12345"), ErrPasswordTooShort)
	assert.NoError(t, ValidatePassword("123456"))
}
