package services

import (
	"context"
	"errors"
	"strings"

	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/services/dto"
	"vinixport_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetMe(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateMe(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
	media    MediaService
}

func NewUserService(userRepo repositories.UserRepository, media MediaService) UserService {
	return &userService{userRepo: userRepo, media: media}
}

func (s *userService) GetMe(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db.WithContext(ctx), userID)
	if err != nil {
		return nil, handleUserError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateMe(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	db = db.WithContext(ctx)

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, handleUserError(err)
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Title != nil {
		user.Title = *req.Title
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		avatar, err := s.media.ResolveImage(ctx, user.ID, MediaAvatar, *req.AvatarURL)
		if err != nil {
			return nil, err
		}
		user.AvatarURL = avatar
	}

	if err := s.userRepo.UpdateProfile(db, user); err != nil {
		return nil, handleUserError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func handleUserError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrUserNotFound
	case errors.Is(err, repositories.ErrUserAlreadyExists):
		return apperrors.ErrEmailAlreadyExists
	default:
		return apperrors.StoreError(err)
	}
}
