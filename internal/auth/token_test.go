package auth

import (
	"testing"
	"time"

	"vinixport_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, "vinixport")

	token, expiresAt, err := tm.GenerateToken("user-1", models.UserRoleMentor)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	p, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, Principal{UserID: "user-1", Role: models.UserRoleMentor}, p)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, "vinixport")
	valid, _, err := tm.GenerateToken("user-1", models.UserRoleMentee)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other", time.Hour, "vinixport")
		_, err := other.ParseToken(valid)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewTokenManager("secret", time.Hour, "someone-else")
		_, err := other.ParseToken(valid)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewTokenManager("secret", time.Minute, "vinixport")
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		old, _, err := past.GenerateToken("user-1", models.UserRoleMentee)
		require.NoError(t, err)

		_, err = tm.ParseToken(old)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := Claims{
			Role: models.UserRole("superuser"),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				Issuer:    "vinixport",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = tm.ParseToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := Claims{
			Role: models.UserRoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				Issuer:    "vinixport",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tm.ParseToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.ParseToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenManager_GenerateErrors(t *testing.T) {
	_, _, err := NewTokenManager("", time.Hour, "").GenerateToken("user-1", models.UserRoleMentee)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, _, err = NewTokenManager("secret", time.Hour, "").GenerateToken("", models.UserRoleMentee)
	assert.Error(t, err)
}
