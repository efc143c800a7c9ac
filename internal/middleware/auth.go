package middleware

import (
	"strings"

	"vinixport_backend/internal/auth"
	"vinixport_backend/internal/logger"
	"vinixport_backend/internal/models"
	"vinixport_backend/pkg/apperrors"
	"vinixport_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware проверяет Bearer токен и кладет auth.Principal в контекст.
// Идентификаторы из заголовков или тела запроса не используются.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrAuthRequired)
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		principal, err := tokens.ParseToken(tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "rejected bearer token", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(string(contextkeys.PrincipalKey), principal)
		ctx := logger.WithPrincipal(c.Request.Context(), principal.UserID, string(principal.Role))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles пропускает только перечисленные роли
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrAuthRequired)
			return
		}
		if !roleSet[principal.Role] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// GetPrincipal возвращает Principal, установленный AuthMiddleware
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	val, exists := c.Get(string(contextkeys.PrincipalKey))
	if !exists {
		return auth.Principal{}, false
	}
	principal, ok := val.(auth.Principal)
	if !ok || principal.IsZero() {
		return auth.Principal{}, false
	}
	return principal, true
}
