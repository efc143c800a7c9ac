package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_CopiesKeepIdentity(t *testing.T) {
	withDetails := ErrReviewRequestNotFound.WithDetails(map[string]string{"id": "x"})
	assert.True(t, errors.Is(withDetails, ErrReviewRequestNotFound))
	assert.Nil(t, ErrReviewRequestNotFound.Details, "shared error must not be mutated")

	cause := errors.New("boom")
	wrapped := fmt.Errorf("layer: %w", StoreError(cause))
	assert.True(t, errors.Is(wrapped, cause))

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeDatabaseError, appErr.Code)
	assert.False(t, errors.Is(ErrPaymentRejected, ErrPaymentNotApproved))
}

func TestAppError_MarshalHidesCause(t *testing.T) {
	b, err := json.Marshal(StoreError(errors.New("password=secret")))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.Contains(t, string(b), string(CodeDatabaseError))
}

func performError(t *testing.T, err error, debug bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	SetDebug(debug)
	t.Cleanup(func() { SetDebug(false) })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleError(c, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleError(t *testing.T) {
	t.Run("locked portfolio", func(t *testing.T) {
		w, body := performError(t, ErrPortfolioLocked, false)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, true, body["locked"])
		assert.Equal(t, string(CodePaymentRequired), body["error"].(map[string]any)["code"])
	})

	t.Run("not found has no locked flag", func(t *testing.T) {
		w, body := performError(t, ErrUserNotFound, false)
		assert.Equal(t, http.StatusNotFound, w.Code)
		_, hasLocked := body["locked"]
		assert.False(t, hasLocked)
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		w, body := performError(t, errors.New("driver exploded"), false)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, string(CodeInternalError), body["error"].(map[string]any)["code"])
		assert.NotContains(t, w.Body.String(), "driver exploded")
	})

	t.Run("validation details are kept", func(t *testing.T) {
		w, body := performError(t, ValidationError(map[string]string{"email": "invalid"}), false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		details := body["error"].(map[string]any)["details"].(map[string]any)
		assert.Equal(t, "invalid", details["email"])
	})
}
