package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

var defaultTemplates = map[string]string{
	TemplatePaymentApproved: `<p>Hi {{.Name}},</p>
<p>Your payment for the portfolio review has been verified. A mentor will start reviewing <a href="{{.PortfolioURL}}">your portfolio</a> soon.</p>
<p>Your portfolio page is now public.</p>`,
	TemplatePaymentRejected: `<p>Hi {{.Name}},</p>
<p>We could not verify the payment for your review request. Please submit a new request with a valid payment proof.</p>`,
	TemplateReviewCompleted: `<p>Hi {{.Name}},</p>
<p>Your portfolio review is complete. Mentor feedback:</p>
<blockquote>{{.Feedback}}</blockquote>`,
}

type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		templates: make(map[string]*template.Template),
	}
}

// NewDefaultTemplateManager загружает встроенные шаблоны уведомлений
func NewDefaultTemplateManager() *TemplateManager {
	tm := NewTemplateManager()
	for name, body := range defaultTemplates {
		// встроенные шаблоны парсятся всегда
		_ = tm.AddTemplate(name, body)
	}
	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Option("missingkey=zero").Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
