package services_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"vinixport_backend/internal/auth"
	"vinixport_backend/internal/email"
	"vinixport_backend/internal/events"
	"vinixport_backend/internal/imageprocessor"
	"vinixport_backend/internal/metrics"
	"vinixport_backend/internal/models"
	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/services"
	"vinixport_backend/internal/storage"
	"vinixport_backend/internal/validator"

	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	To       []string
	Subject  string
	Template string
	Data     email.TemplateData
}

// recordingProvider запоминает отправленные письма
type recordingProvider struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

func (p *recordingProvider) Send(ctx context.Context, e *email.Email) error {
	return p.SendTemplate(ctx, e.To, e.Subject, "", nil)
}

func (p *recordingProvider) SendTemplate(_ context.Context, to []string, subject, templateName string, data email.TemplateData) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, sentEmail{To: to, Subject: subject, Template: templateName, Data: data})
	return p.err
}

func (p *recordingProvider) Validate() error { return nil }

func (p *recordingProvider) Sent() []sentEmail {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]sentEmail(nil), p.sent...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.ReviewRequestEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.ReviewRequestEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// failingStorage имитирует недоступное облачное хранилище
type failingStorage struct {
	storage.Storage
}

func (failingStorage) Save(context.Context, string, io.Reader, string) error {
	return errors.New("bucket unavailable")
}

type fixture struct {
	reviews    services.ReviewRequestService
	portfolios services.PortfolioService
	gate       services.AccessGate
	mailer     *recordingProvider
	publisher  *recordingPublisher
	metrics    *metrics.Metrics
}

func newMediaService(t *testing.T) services.MediaService {
	t.Helper()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)
	return services.NewMediaService(store, imageprocessor.NewProcessor(85, 64, 64), services.MediaConfig{MaxSize: 1 << 20})
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	userRepo := repositories.NewUserRepository()
	reviewRepo := repositories.NewReviewRequestRepository()
	mailer := &recordingProvider{}
	publisher := &recordingPublisher{}
	m := metrics.New()

	notifier := services.NewReviewNotifier(mailer, publisher, m)
	gate := services.NewAccessGate(reviewRepo)

	return &fixture{
		reviews: services.NewReviewRequestService(reviewRepo, userRepo, newMediaService(t), notifier, validator.New(), m),
		portfolios: services.NewPortfolioService(
			userRepo,
			repositories.NewProjectRepository(),
			repositories.NewCertificateRepository(),
			reviewRepo,
			gate,
			m,
		),
		gate:      gate,
		mailer:    mailer,
		publisher: publisher,
		metrics:   m,
	}
}

func principalOf(u *models.User) auth.Principal {
	return auth.Principal{UserID: u.ID, Role: u.Role}
}
