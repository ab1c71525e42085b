//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/handler/api"
	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/cookie"
	"room-reservation/internal/pkg/jwt"
	"room-reservation/internal/usecase/commands"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/httptest"
	commandsmock "room-reservation/tests/mock/commands"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwt.NewService("test-secret", time.Hour), config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", fakeAuth, s.handler.Me)
	s.router.GET("/auth/me-unauthenticated", s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := reqdto.LoginRequest{IDToken: "provider-id-token"}
	stored := builder.NewUserBuilder().WithID(5).BuildStored()
	view := builder.NewUserBuilder().WithID(5).BuildView()

	s.Run("success: returns token and sets cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "provider-id-token").
			Return(&commands.LoginResult{AccessToken: "access-token", User: stored}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("access-token", body.AccessToken)
		s.Equal("bearer", body.TokenType)
		s.Require().NotNil(body.User)
		s.Equal("test@example.com", body.User.Email)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("access-token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 400 when id_token is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "BAD_REQUEST")
	})

	s.Run("error: 401 on invalid identity token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, jwt.ErrInvalidIdentity)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid identity token")
	})

	s.Run("error: 400 on invalid provider email", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, user.ErrInvalidEmail)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("error: 500 when signing fails", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrTokenGeneration)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the current user", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testUserID).Return(builder.NewUserBuilder().BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, testToken)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(testUserID, body.ID)
	})

	s.Run("error: 401 without user in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me-unauthenticated", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	s.Run("error: 404 when the user vanished", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testUserID).Return(nil, user.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, testToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}
