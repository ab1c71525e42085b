//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/handler/api"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/usecase/queries"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/httptest"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockUserQueries
	handler     *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockQueries)

	g := s.router.Group("/users", fakeAuth)
	g.GET("", s.handler.List)
	g.GET("/search", s.handler.Search)
	g.GET("/:id", s.handler.Get)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestSearch() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "ali", 5).
			Return([]*queries.UserView{builder.NewUserBuilder().WithName("Alice").BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/search?q=ali&limit=5", nil, testToken)

		var body []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Alice", body[0].Name)
	})

	s.Run("error: 400 without a search term", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/search", nil, testToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "BAD_REQUEST")
	})

	s.Run("error: 400 on limit above maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/search?q=a&limit=101", nil, testToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "BAD_REQUEST")
	})
}

func (s *UserHandlerTestSuite) TestList() {
	s.Run("success for an administrator", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), testActor, nil, queries.NewPage(0, 0)).
			Return(&queries.ListResult[*queries.UserView]{
				Items: []*queries.UserView{builder.NewUserBuilder().BuildView()},
				Total: 1,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, testToken)

		var body resdto.ListResponse[resdto.UserResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.Total)
	})

	s.Run("error: 403 for everyone else", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), testActor, gomock.Any(), gomock.Any()).Return(nil, queries.ErrAdminOnly)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, testToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func (s *UserHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(4)).Return(builder.NewUserBuilder().WithID(4).BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/4", nil, testToken)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(4), body.ID)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, user.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/4", nil, testToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}
