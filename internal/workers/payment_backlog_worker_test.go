package workers

import (
	"context"
	"testing"
	"time"

	"vinixport_backend/internal/metrics"
	"vinixport_backend/internal/models"
	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/testutil"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentBacklogWorker_Refresh(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewReviewRequestRepository()
	m := metrics.New()
	w := NewPaymentBacklogWorker(db, repo, m, time.Minute)

	w.Refresh(context.Background())
	assert.Equal(t, float64(0), promtest.ToFloat64(m.PaymentsAwaitingVerification))

	mentee := testutil.CreateUser(t, db, "mentee", models.UserRoleMentee)
	mentor := testutil.CreateUser(t, db, "mentor", models.UserRoleMentor)
	first := testutil.CreateReviewRequest(t, db, mentee)
	testutil.CreateReviewRequest(t, db, mentee)

	w.Refresh(context.Background())
	assert.Equal(t, float64(2), promtest.ToFloat64(m.PaymentsAwaitingVerification))

	_, _, err := repo.ApprovePayment(db, first.ID, mentor.ID)
	require.NoError(t, err)

	w.Refresh(context.Background())
	assert.Equal(t, float64(1), promtest.ToFloat64(m.PaymentsAwaitingVerification))
}

func TestPaymentBacklogWorker_StartStops(t *testing.T) {
	db := testutil.NewTestDB(t)
	m := metrics.New()
	mentee := testutil.CreateUser(t, db, "mentee", models.UserRoleMentee)
	testutil.CreateReviewRequest(t, db, mentee)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewPaymentBacklogWorker(db, repositories.NewReviewRequestRepository(), m, 10*time.Millisecond).Start(ctx)

	require.Eventually(t, func() bool {
		return promtest.ToFloat64(m.PaymentsAwaitingVerification) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestNewPaymentBacklogWorker_DefaultInterval(t *testing.T) {
	w := NewPaymentBacklogWorker(nil, nil, nil, 0)
	assert.Equal(t, DefaultBacklogInterval, w.interval)
}
