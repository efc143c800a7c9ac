package services

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"vinixport_backend/internal/auth"
	"vinixport_backend/internal/logger"
	"vinixport_backend/internal/models"
	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/services/dto"
	"vinixport_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	defaultTitle     = "New Member"
	defaultBio       = "Tell us about yourself..."
	avatarServiceURL = "https://ui-avatars.com/api/?name="
)

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo          repositories.UserRepository
	tokens            *auth.TokenManager
	allowMentorSignup bool
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager, allowMentorSignup bool) AuthService {
	return &authService{
		userRepo:          userRepo,
		tokens:            tokens,
		allowMentorSignup: allowMentorSignup,
	}
}

func (s *authService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleMentee
	}
	if err := auth.ValidateSignupRole(role, s.allowMentorSignup); err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	name := strings.TrimSpace(req.Name)
	user := &models.User{
		Name:         name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Title:        defaultTitle,
		Bio:          defaultBio,
		AvatarURL:    avatarServiceURL + url.QueryEscape(name),
	}

	if err := s.userRepo.Create(db.WithContext(ctx), user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.StoreError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db.WithContext(ctx), req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StoreError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.CtxWarn(ctx, "login failed: wrong password", "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *authService) issue(user *models.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.NewUserResponse(user),
	}, nil
}
