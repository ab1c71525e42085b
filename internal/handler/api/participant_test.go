//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"room-reservation/internal/domain/participant"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/handler/api"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
	"room-reservation/tests/common/httptest"
	commandsmock "room-reservation/tests/mock/commands"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ParticipantHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockParticipantCommands
	mockQueries  *queriesmock.MockParticipantQueries
	handler      *api.ParticipantHandler
}

func (s *ParticipantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockParticipantCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockParticipantQueries(s.mockCtrl)
	s.handler = api.NewParticipantHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/participants", fakeAuth, s.handler.Create)
	s.router.DELETE("/participants/:id", fakeAuth, s.handler.Delete)
	s.router.GET("/reservations/:id/participants", fakeAuth, s.handler.ListByReservation)
	s.router.DELETE("/reservations/:id/participants", fakeAuth, s.handler.DeleteByReservation)
}

func (s *ParticipantHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestParticipantHandlerSuite(t *testing.T) {
	suite.Run(t, new(ParticipantHandlerTestSuite))
}

var joinedAt = time.Date(2029, 12, 31, 9, 0, 0, 0, time.UTC)

func (s *ParticipantHandlerTestSuite) TestCreate() {
	s.Run("success: manual name", func() {
		in := commands.CreateParticipantInput{ReservationID: 5, ManualName: ptr.Of("Guest")}
		created := participant.ReconstructParticipant(9, 5, nil, ptr.Of("Guest"), joinedAt)
		s.mockCommands.EXPECT().Create(gomock.Any(), in, testActor).Return(created, nil)
		s.mockQueries.EXPECT().ListByReservation(gomock.Any(), int64(5)).Return([]*queries.ParticipantView{
			{ID: 8, ReservationID: 5, UserID: ptr.Of(int64(2)), UserName: ptr.Of("Bob"), CreatedAt: joinedAt},
			{ID: 9, ReservationID: 5, ManualName: ptr.Of("Guest"), CreatedAt: joinedAt},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/participants",
			map[string]any{"reservation_id": 5, "manual_name": "Guest"}, testToken)

		var body resdto.ParticipantResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(9), body.ID)
		s.Equal(ptr.Of("Guest"), body.ManualName)
	})

	s.Run("error: 400 when reservation_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/participants",
			map[string]any{"manual_name": "Guest"}, testToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "BAD_REQUEST")
	})

	s.Run("error: 400 when both user and name are given", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), testActor).Return(nil, participant.ErrIdentityRequired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/participants",
			map[string]any{"reservation_id": 5, "user_id": 2, "manual_name": "Guest"}, testToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_RELATIONSHIP")
	})

	s.Run("error: 409 on duplicate user", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), testActor).Return(nil, participant.ErrDuplicateUser)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/participants",
			map[string]any{"reservation_id": 5, "user_id": 2}, testToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "CONFLICT")
	})

	s.Run("error: 403 on someone else's reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), testActor).Return(nil, reservation.ErrNotCreator)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/participants",
			map[string]any{"reservation_id": 5, "user_id": 2}, testToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func (s *ParticipantHandlerTestSuite) TestListByReservation() {
	s.mockQueries.EXPECT().ListByReservation(gomock.Any(), int64(5)).Return([]*queries.ParticipantView{
		{ID: 8, ReservationID: 5, UserID: ptr.Of(int64(2)), UserName: ptr.Of("Bob"), UserEmail: ptr.Of("bob@example.com"), CreatedAt: joinedAt},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/5/participants", nil, testToken)

	var body []resdto.ParticipantResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal(ptr.Of("Bob"), body[0].UserName)
}

func (s *ParticipantHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(9), testActor).Return(true, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/participants/9", nil, testToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when nothing was removed", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(9), testActor).Return(false, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/participants/9", nil, testToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *ParticipantHandlerTestSuite) TestDeleteByReservation() {
	s.mockCommands.EXPECT().DeleteByReservation(gomock.Any(), int64(5), testActor).Return(int64(3), nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/5/participants", nil, testToken)

	var body resdto.DeletedCountResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(3), body.Deleted)
}
