package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplates_Render(t *testing.T) {
	tm := NewDefaultTemplateManager()

	out, err := tm.Render(TemplateReviewCompleted, TemplateData{"Name": "Rina", "Feedback": "<b>nice</b>"})
	require.NoError(t, err)
	assert.Contains(t, out, "Hi Rina")
	assert.Contains(t, out, "&lt;b&gt;nice&lt;/b&gt;")

	_, err = tm.Render("unknown", nil)
	assert.Error(t, err)
}

func TestSMTPProvider_Validate(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "", Port: 587, FromEmail: "a@b.c"}, nil)
	assert.Error(t, p.Validate())

	p = NewSMTPProvider(&SMTPConfig{Host: "smtp.local", Port: 70000, FromEmail: "a@b.c"}, nil)
	assert.Error(t, p.Validate())

	p = NewSMTPProvider(&SMTPConfig{Host: "smtp.local", Port: 587, FromEmail: "a@b.c"}, nil)
	assert.NoError(t, p.Validate())
}

func TestSMTPProvider_BuildMessage(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "smtp.local", Port: 587, FromEmail: "team@vinix.dev", FromName: "Vinix"}, nil)
	m := p.buildMessage(&Email{To: []string{"x@y.z"}, Subject: "Hello", HTMLBody: "<p>hi</p>"})

	assert.Equal(t, []string{"Hello"}, m.GetHeader("Subject"))
	assert.Equal(t, []string{"x@y.z"}, m.GetHeader("To"))
	require.Len(t, m.GetHeader("From"), 1)
	assert.Contains(t, m.GetHeader("From")[0], "team@vinix.dev")
}

func TestLogProvider_SendTemplate(t *testing.T) {
	p := NewLogProvider()
	assert.NoError(t, p.SendTemplate(context.Background(), []string{"x@y.z"}, "s", TemplatePaymentApproved, TemplateData{"Name": "A"}))
	assert.Error(t, p.SendTemplate(context.Background(), []string{"x@y.z"}, "s", "missing", nil))
}
