package email

type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

type TemplateData map[string]interface{}

// Имена встроенных шаблонов уведомлений по заявкам на ревью
const (
	TemplatePaymentApproved = "payment_approved"
	TemplatePaymentRejected = "payment_rejected"
	TemplateReviewCompleted = "review_completed"
)
