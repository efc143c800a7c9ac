package services_test

import (
	"context"
	"testing"
	"time"

	"vinixport_backend/internal/auth"
	"vinixport_backend/internal/models"
	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/services"
	"vinixport_backend/internal/services/dto"
	"vinixport_backend/internal/testutil"
	"vinixport_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(allowMentor bool) (services.AuthService, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour, "vinixport")
	return services.NewAuthService(repositories.NewUserRepository(), tokens, allowMentor), tokens
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc, tokens := newAuthService(true)

	resp, err := svc.Register(ctx, db, &dto.RegisterRequest{
		Name:     "Rina Putri",
		Email:    "Rina@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "rina@example.com", resp.User.Email)
	assert.Equal(t, string(models.UserRoleMentee), resp.User.Role)
	assert.Equal(t, "New Member", resp.User.Title)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Rina+Putri", resp.User.AvatarURL)

	p, err := tokens.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, p.UserID)
	assert.Equal(t, models.UserRoleMentee, p.Role)

	_, err = svc.Register(ctx, db, &dto.RegisterRequest{Name: "Dup", Email: "rina@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	mentor, err := svc.Register(ctx, db, &dto.RegisterRequest{Name: "M", Email: "m@example.com", Password: "secret1", Role: "mentor"})
	require.NoError(t, err)
	assert.Equal(t, string(models.UserRoleMentor), mentor.User.Role)
}

func TestRegister_RoleAndPasswordRules(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc, _ := newAuthService(false)

	_, err := svc.Register(ctx, db, &dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret1", Role: "admin"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)

	_, err = svc.Register(ctx, db, &dto.RegisterRequest{Name: "M", Email: "m@example.com", Password: "secret1", Role: "mentor"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)

	_, err = svc.Register(ctx, db, &dto.RegisterRequest{Name: "W", Email: "w@example.com", Password: "12345"})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc, _ := newAuthService(true)
	user := testutil.CreateUser(t, db, "rina", models.UserRoleMentor)

	resp, err := svc.Login(ctx, db, &dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	_, err = svc.Login(ctx, db, &dto.LoginRequest{Email: user.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, db, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
