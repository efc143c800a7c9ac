package email

import (
	"context"

	"vinixport_backend/internal/logger"
)

// Provider отправляет письма. Ошибка отправки не должна откатывать переход заявки.
type Provider interface {
	Send(ctx context.Context, email *Email) error
	SendTemplate(ctx context.Context, to []string, subject, templateName string, data TemplateData) error
	Validate() error
}

// LogProvider ничего не отправляет, только пишет в лог. Используется когда email выключен.
type LogProvider struct {
	renderer *TemplateManager
}

func NewLogProvider() *LogProvider {
	return &LogProvider{renderer: NewDefaultTemplateManager()}
}

func (p *LogProvider) Send(ctx context.Context, email *Email) error {
	logger.CtxDebug(ctx, "email skipped (provider disabled)", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *LogProvider) SendTemplate(ctx context.Context, to []string, subject, templateName string, data TemplateData) error {
	if _, err := p.renderer.Render(templateName, data); err != nil {
		return err
	}
	return p.Send(ctx, &Email{To: to, Subject: subject})
}

func (p *LogProvider) Validate() error {
	return nil
}
