package workers

import (
	"context"
	"time"

	"vinixport_backend/internal/logger"
	"vinixport_backend/internal/metrics"
	"vinixport_backend/internal/models"
	"vinixport_backend/internal/repositories"

	"gorm.io/gorm"
)

const DefaultBacklogInterval = 5 * time.Minute

// PaymentBacklogWorker периодически считает заявки с непроверенной оплатой
// и публикует число в метрику. Заявки он не меняет.
type PaymentBacklogWorker struct {
	db         *gorm.DB
	reviewRepo repositories.ReviewRequestRepository
	metrics    *metrics.Metrics
	interval   time.Duration
}

func NewPaymentBacklogWorker(db *gorm.DB, reviewRepo repositories.ReviewRequestRepository, m *metrics.Metrics, interval time.Duration) *PaymentBacklogWorker {
	if interval <= 0 {
		interval = DefaultBacklogInterval
	}
	return &PaymentBacklogWorker{
		db:         db,
		reviewRepo: reviewRepo,
		metrics:    m,
		interval:   interval,
	}
}

// Start запускает фоновый цикл до отмены ctx
func (w *PaymentBacklogWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *PaymentBacklogWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Payment backlog worker stopped")
			return
		case <-ticker.C:
			w.Refresh(ctx)
		}
	}
}

// Refresh делает один подсчет. Ошибка только логируется.
func (w *PaymentBacklogWorker) Refresh(ctx context.Context) {
	count, err := w.reviewRepo.CountByPaymentStatus(w.db.WithContext(ctx), models.PaymentStatusWaitingVerification)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to count payments awaiting verification", err)
		return
	}
	w.metrics.SetPaymentBacklog(count)
	if count > 0 {
		logger.CtxDebug(ctx, "Payments awaiting verification", "count", count)
	}
}
