package validator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,is-signup-role"`
}

type payment struct {
	Amount *decimal.Decimal `json:"paymentAmount" validate:"omitempty,gte=0"`
	Proof  string           `json:"paymentProofImage" validate:"omitempty,image-ref"`
	Link   string           `json:"portfolioUrl" validate:"required,http-url"`
}

func validationErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected *ValidationError, got %v", err)
	return vErr.Errors
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()
	errs := validationErrors(t, v.Validate(&signup{Email: "nope", Role: "admin"}))

	assert.Equal(t, "Must be a valid email address", errs["email"])
	assert.Equal(t, "Must be one of: user, mentor", errs["role"])
}

func TestValidate_SignupRole(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&signup{Email: "a@b.co", Role: "user"}))
	assert.NoError(t, v.Validate(&signup{Email: "a@b.co", Role: "mentor"}))
	assert.Error(t, v.Validate(&signup{Email: "a@b.co", Role: "root"}))
}

func TestValidate_DecimalAndImageRef(t *testing.T) {
	v := New()
	neg := decimal.NewFromInt(-5)
	pos := decimal.RequireFromString("150000.50")

	errs := validationErrors(t, v.Validate(&payment{Amount: &neg, Link: "http://x"}))
	assert.Contains(t, errs, "paymentAmount")

	assert.NoError(t, v.Validate(&payment{Amount: &pos, Link: "http://x"}))
	assert.NoError(t, v.Validate(&payment{Link: "https://x.dev/me"}))
	assert.NoError(t, v.Validate(&payment{Link: "http://x", Proof: "data:image/png;base64,AAAA"}))

	errs = validationErrors(t, v.Validate(&payment{Link: "ftp://x", Proof: "file:///etc/passwd"}))
	assert.Contains(t, errs, "portfolioUrl")
	assert.Contains(t, errs, "paymentProofImage")
}

func TestIsDataURL(t *testing.T) {
	assert.True(t, IsDataURL("data:image/jpeg;base64,/9j/"))
	assert.False(t, IsDataURL("data:text/plain;base64,aGk="))
	assert.False(t, IsDataURL("https://example.com/a.png"))
}
