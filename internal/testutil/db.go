package testutil

import (
	"fmt"
	"strings"
	"testing"

	"vinixport_backend/internal/auth"
	"vinixport_backend/internal/database"
	"vinixport_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB поднимает изолированную in-memory sqlite с мигрированной схемой
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := database.Open("sqlite", dsn, false)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser создает пользователя с паролем "password123"
func CreateUser(t *testing.T, db *gorm.DB, name string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        strings.ToLower(fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8])),
		PasswordHash: hash,
		Role:         role,
		Title:        "New Member",
		Bio:          "Tell us about yourself...",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateReviewRequest создает заявку в начальном состоянии
func CreateReviewRequest(t *testing.T, db *gorm.DB, mentee *models.User) *models.ReviewRequest {
	t.Helper()

	rr := &models.ReviewRequest{
		MenteeID:           mentee.ID,
		MenteeName:         mentee.Name,
		MenteeEmail:        mentee.Email,
		PortfolioURL:       "https://portfolio.example.com/" + mentee.ID,
		PaymentBank:        Ptr("BCA"),
		PaymentAccountName: Ptr(mentee.Name),
		PaymentProofImage:  Ptr("https://cdn.example.com/proof.png"),
		PaymentStatus:      models.PaymentStatusWaitingVerification,
		Status:             models.ReviewStatusPending,
	}
	require.NoError(t, db.Create(rr).Error)
	return rr
}

func Ptr[T any](v T) *T {
	return &v
}
