//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"room-reservation/internal/handler/dto/request"
	"room-reservation/internal/handler/dto/response"
	"room-reservation/tests/common/authtest"
	"room-reservation/tests/common/dbtest"
	"room-reservation/tests/common/httptest"
	"room-reservation/tests/e2e"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/v1/auth/login"
	logoutURL = "/api/v1/auth/logout"
	meURL     = "/api/v1/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		idToken        func() string
		expectedStatus int
	}{
		{
			name: "valid identity token",
			idToken: func() string {
				return s.jwtHelper.IdentityToken(s.T(), "google-oauth2|1", "Alice@Example.com", "Alice")
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong audience",
			idToken: func() string {
				return authtest.SignIdentityToken(s.T(), s.Config.Identity, gojwt.MapClaims{
					"sub": "google-oauth2|1", "email": "alice@example.com", "aud": "someone-else",
				})
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "expired identity token",
			idToken: func() string {
				return authtest.SignIdentityToken(s.T(), s.Config.Identity, gojwt.MapClaims{
					"sub": "google-oauth2|1", "email": "alice@example.com", "exp": time.Now().Add(-time.Minute).Unix(),
				})
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unverified email",
			idToken: func() string {
				return authtest.SignIdentityToken(s.T(), s.Config.Identity, gojwt.MapClaims{
					"sub": "google-oauth2|1", "email": "alice@example.com", "email_verified": false,
				})
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty token",
			idToken:        func() string { return "" },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{IDToken: tt.idToken()}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken)
				require.NotNil(t, loginRes.User)
				require.Equal(t, "alice@example.com", loginRes.User.Email)

				var lastLogin *time.Time
				err := s.DB.QueryRow(t.Context(), "SELECT last_login_at FROM users WHERE email = $1", "alice@example.com").Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login_at was not recorded")
			}
		})
	}
}

func (s *authSuite) TestLogin_UpsertsUser() {
	s.Run("second login matches by email and keeps one row", func() {
		t := s.T()
		existing := dbtest.CreateTestUser(t, s.DB, "bob@example.com", "Bob")

		idToken := s.jwtHelper.IdentityToken(t, "new-provider|9", "bob@example.com", "Robert")
		authtest.LoginUser(t, s.Router, idToken)

		var (
			count int
			id    int64
			name  string
		)
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM users").Scan(&count))
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT id, name FROM users WHERE email = $1", "bob@example.com").Scan(&id, &name))
		require.Equal(t, 1, count)
		require.Equal(t, existing, id)
		require.Equal(t, "Robert", name)
	})
}

func (s *authSuite) TestMe() {
	s.Run("with cookie from login", func() {
		t := s.T()
		idToken := s.jwtHelper.IdentityToken(t, "google-oauth2|2", "carol@example.com", "Carol")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{IDToken: idToken}, "")
		require.Equal(t, http.StatusOK, w.Code)

		me := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, httptest.ExtractCookies(w), "")
		var body response.UserResponse
		httptest.AssertSuccessResponse(t, me, http.StatusOK, &body)
		require.Equal(t, "carol@example.com", body.Email)
	})

	s.Run("with bearer token", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "dave@example.com", "Dave")
		token := s.jwtHelper.GenerateToken(t, id, "dave@example.com", "Dave")

		me := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertSuccessResponse(t, me, http.StatusOK, nil)
	})

	s.Run("expired token", func() {
		t := s.T()
		token := s.jwtHelper.CreateExpiredToken(t, 1, "dave@example.com", "Dave")

		me := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorCode(t, me, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	s.Run("no token", func() {
		me := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorCode(s.T(), me, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the cookie", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusNoContent, w.Code)

		c := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, c)
		require.Empty(t, c.Value)
	})
}
