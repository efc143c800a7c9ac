package events

import (
	"context"
	"time"
)

type Type string

const (
	ReviewRequestSubmitted Type = "review_request.submitted"
	PaymentApproved        Type = "review_request.payment_approved"
	PaymentRejected        Type = "review_request.payment_rejected"
	ReviewCompleted        Type = "review_request.completed"
)

// ReviewRequestEvent публикуется после успешного перехода заявки
type ReviewRequestEvent struct {
	Type            Type      `json:"type"`
	ReviewRequestID string    `json:"reviewRequestId"`
	MenteeID        string    `json:"menteeId"`
	ActorID         string    `json:"actorId"`
	PaymentStatus   string    `json:"paymentStatus"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, event ReviewRequestEvent) error
	Close() error
}

// NoopPublisher используется когда брокеры не настроены
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ReviewRequestEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
