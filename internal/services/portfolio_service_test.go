package services_test

import (
	"context"
	"testing"

	"vinixport_backend/internal/models"
	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/testutil"
	"vinixport_backend/pkg/apperrors"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestGetPortfolio_NotFoundVersusLocked(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	f := newFixture(t)
	mentee := testutil.CreateUser(t, db, "rina", models.UserRoleMentee)

	_, err := f.portfolios.GetPortfolio(ctx, db, "no-such-user")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = f.portfolios.GetPortfolio(ctx, db, mentee.ID)
	assert.ErrorIs(t, err, apperrors.ErrPortfolioLocked)

	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.PortfolioViews.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.PortfolioViews.WithLabelValues("locked")))
}

func TestGetPortfolio_Unlocked(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	f := newFixture(t)
	mentee := testutil.CreateUser(t, db, "rina", models.UserRoleMentee)
	mentor := testutil.CreateUser(t, db, "mentor", models.UserRoleMentor)

	// старые строки хранят теги в разных форматах
	for _, raw := range []string{`["go","sql"]`, `"[\"vue\"]"`, `{"bad":true}`} {
		p := &models.Project{UserID: mentee.ID, Title: "p", Tags: datatypes.JSON(raw)}
		require.NoError(t, db.Create(p).Error)
	}
	require.NoError(t, repositories.NewCertificateRepository().Create(db, &models.Certificate{UserID: mentee.ID, Title: "AWS SAA"}))

	rr := testutil.CreateReviewRequest(t, db, mentee)
	_, _, err := repositories.NewReviewRequestRepository().ApprovePayment(db, rr.ID, mentor.ID)
	require.NoError(t, err)

	portfolio, err := f.portfolios.GetPortfolio(ctx, db, mentee.ID)
	require.NoError(t, err)
	assert.Equal(t, mentee.Name, portfolio.User.Name)
	assert.Equal(t, string(models.UserRoleMentee), portfolio.User.Role)
	require.Len(t, portfolio.Projects, 3)
	require.Len(t, portfolio.Certificates, 1)

	var tagSets [][]string
	for _, p := range portfolio.Projects {
		require.NotNil(t, p.Tags)
		tagSets = append(tagSets, p.Tags)
	}
	assert.ElementsMatch(t, [][]string{{"go", "sql"}, {"vue"}, {}}, tagSets)

	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.PortfolioViews.WithLabelValues("ok")))
	assert.Equal(t, 0.0, promtest.ToFloat64(f.metrics.PortfolioViews.WithLabelValues("locked")))
}

func TestListApprovedPortfolios(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	f := newFixture(t)
	mentor := testutil.CreateUser(t, db, "mentor", models.UserRoleMentor)
	paid := testutil.CreateUser(t, db, "paid", models.UserRoleMentee)
	waiting := testutil.CreateUser(t, db, "waiting", models.UserRoleMentee)

	reviewRepo := repositories.NewReviewRequestRepository()
	for i := 0; i < 2; i++ {
		rr := testutil.CreateReviewRequest(t, db, paid)
		_, _, err := reviewRepo.ApprovePayment(db, rr.ID, mentor.ID)
		require.NoError(t, err)
	}
	testutil.CreateReviewRequest(t, db, waiting)

	cards, err := f.portfolios.ListApprovedPortfolios(ctx, db)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, paid.ID, cards[0].ID)
}

func TestAccessGate(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	f := newFixture(t)
	mentee := testutil.CreateUser(t, db, "rina", models.UserRoleMentee)
	mentor := testutil.CreateUser(t, db, "mentor", models.UserRoleMentor)

	ok, err := f.gate.CanViewPortfolio(ctx, db, "unknown")
	require.NoError(t, err)
	assert.False(t, ok)

	rr := testutil.CreateReviewRequest(t, db, mentee)
	ok, err = f.gate.CanViewPortfolio(ctx, db, mentee.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = repositories.NewReviewRequestRepository().ApprovePayment(db, rr.ID, mentor.ID)
	require.NoError(t, err)
	ok, err = f.gate.CanViewPortfolio(ctx, db, mentee.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
