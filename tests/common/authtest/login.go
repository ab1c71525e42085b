//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"room-reservation/internal/handler/dto/request"
	"room-reservation/internal/pkg/config"
	"room-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	loginURL  = "/api/v1/auth/login"
	logoutURL = "/api/v1/auth/logout"
)

func LoginUser(t *testing.T, router *gin.Engine, idToken string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginURL,
		request.LoginRequest{IDToken: idToken}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// LoginAs signs in through the identity provider flow, creating the user on first login.
func LoginAs(t *testing.T, router *gin.Engine, cfg config.Config, email, name string) string {
	t.Helper()
	idToken := NewJWTHelper(cfg).IdentityToken(t, "subject|"+email, email, name)
	return LoginUser(t, router, idToken)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, logoutURL, nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
