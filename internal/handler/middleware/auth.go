package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/cookie"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	admin          config.AdminConfig
}

const (
	ctxUserIDKey    = "user_id"
	ctxUserEmailKey = "user_email"
	ctxUserNameKey  = "user_name"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		admin:          cfg.Admin,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "Access token required", nil)
			return
		}

		authUser, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.CodeUnauthorized, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, authUser.ID)
		c.Set(ctxUserEmailKey, authUser.Email)
		c.Set(ctxUserNameKey, authUser.Name)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetUserEmail(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "Access token required", nil)
			return
		}
		if !m.admin.IsAdmin(email) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, errs.KindForbidden.String(), "Admin privileges required", nil)
			return
		}
		c.Next()
	}
}

// extractToken prefers the access cookie over the Authorization header.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}

// GetUserEmail returns the acting identity.
func GetUserEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

func GetUserName(c *gin.Context) string {
	return c.GetString(ctxUserNameKey)
}
