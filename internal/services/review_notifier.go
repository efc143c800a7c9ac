package services

import (
	"context"
	"time"

	"vinixport_backend/internal/email"
	"vinixport_backend/internal/events"
	"vinixport_backend/internal/logger"
	"vinixport_backend/internal/metrics"
	"vinixport_backend/internal/models"
)

// ReviewNotifier выполняет побочные действия после успешного перехода заявки.
// Ни одна ошибка отсюда не возвращается вызывающему: переход уже записан.
type ReviewNotifier struct {
	email     email.Provider
	publisher events.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewReviewNotifier(provider email.Provider, publisher events.Publisher, m *metrics.Metrics) *ReviewNotifier {
	if provider == nil {
		provider = email.NewLogProvider()
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &ReviewNotifier{
		email:     provider,
		publisher: publisher,
		metrics:   m,
		now:       time.Now,
	}
}

var transitionEmails = map[events.Type]struct {
	subject  string
	template string
}{
	events.PaymentApproved: {"Your payment has been verified", email.TemplatePaymentApproved},
	events.PaymentRejected: {"Your payment could not be verified", email.TemplatePaymentRejected},
	events.ReviewCompleted: {"Your portfolio review is ready", email.TemplateReviewCompleted},
}

func (n *ReviewNotifier) Notify(ctx context.Context, eventType events.Type, rr *models.ReviewRequest, actorID string) {
	event := events.ReviewRequestEvent{
		Type:            eventType,
		ReviewRequestID: rr.ID,
		MenteeID:        rr.MenteeID,
		ActorID:         actorID,
		PaymentStatus:   string(rr.PaymentStatus),
		Status:          string(rr.Status),
		OccurredAt:      n.now().UTC(),
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.metrics.ObserveSideEffectFailure("kafka")
		logger.CtxWarn(ctx, "failed to publish review request event", "type", eventType, "review_request_id", rr.ID, "error", err.Error())
	}

	mail, ok := transitionEmails[eventType]
	if !ok || rr.MenteeEmail == "" {
		return
	}

	data := email.TemplateData{
		"Name":         rr.MenteeName,
		"PortfolioURL": rr.PortfolioURL,
	}
	if rr.MentorFeedback != nil {
		data["Feedback"] = *rr.MentorFeedback
	}
	to := []string{rr.MenteeEmail}

	// письмо уходит после ответа клиенту, поэтому отвязываемся от отмены запроса
	mailCtx := context.WithoutCancel(ctx)
	go func() {
		sendCtx, cancel := context.WithTimeout(mailCtx, 30*time.Second)
		defer cancel()

		err := n.email.SendTemplate(sendCtx, to, mail.subject, mail.template, data)
		if err != nil {
			n.metrics.ObserveSideEffectFailure("email")
		}
		logger.SideEffectLog("email", string(eventType), err)
	}()
}
