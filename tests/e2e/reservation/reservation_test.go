//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"room-reservation/internal/handler/dto/request"
	"room-reservation/internal/handler/dto/response"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/tests/common/authtest"
	"room-reservation/tests/common/dbtest"
	"room-reservation/tests/common/httptest"
	"room-reservation/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/v1/reservations"
	participantsURL = "/api/v1/participants"
	owner           = "owner@example.com"
	stranger        = "stranger@example.com"
)

type reservationSuite struct {
	e2e.SharedSuite
	ownerToken    string
	strangerToken string
	locationID    int64
	roomID        int64
	otherRoomID   int64
	day           time.Time
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.ownerToken = authtest.LoginAs(t, s.Router, s.Config, owner, "Owner")
	s.strangerToken = authtest.LoginAs(t, s.Router, s.Config, stranger, "Stranger")

	s.locationID = dbtest.CreateTestLocation(t, s.DB, "Building A")
	s.roomID = dbtest.CreateTestRoom(t, s.DB, s.locationID, "Room 101", 8)
	otherLocation := dbtest.CreateTestLocation(t, s.DB, "Building B")
	s.otherRoomID = dbtest.CreateTestRoom(t, s.DB, otherLocation, "Room 201", 4)

	s.day = time.Now().UTC().Add(72 * time.Hour).Truncate(24 * time.Hour)
}

func (s *reservationSuite) at(hour int) time.Time {
	return s.day.Add(time.Duration(hour) * time.Hour)
}

func (s *reservationSuite) booking(from, to int) request.CreateReservationRequest {
	return request.CreateReservationRequest{
		LocationID:  s.locationID,
		RoomID:      s.roomID,
		StartTime:   s.at(from),
		EndTime:     s.at(to),
		Responsible: "Alice",
	}
}

func (s *reservationSuite) create(body any, token string) (*response.ReservationResponse, int, string) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, body, token)
	if w.Code != http.StatusCreated {
		return nil, w.Code, w.Body.String()
	}
	var res response.ReservationResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	return &res, w.Code, ""
}

func (s *reservationSuite) TestCreate() {
	s.Run("stores denormalized names and the creator", func() {
		res, code, body := s.create(s.booking(9, 10), s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)

		s.Equal("Building A", res.LocationName)
		s.Equal("Room 101", res.RoomName)
		s.Equal(ptr.Of(owner), res.CreatedBy)
		s.False(res.Coffee)
		s.Nil(res.CoffeeQuantity)
	})

	s.Run("overlap in the same room is rejected", func() {
		_, code, body := s.create(s.booking(9, 11), s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.booking(10, 12), s.ownerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "CONFLICT")
	})

	s.Run("adjacent slots are allowed", func() {
		_, code, body := s.create(s.booking(9, 10), s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)

		_, code, body = s.create(s.booking(10, 11), s.strangerToken)
		s.Equal(http.StatusCreated, code, body)
	})

	s.Run("deleted reservations free the slot", func() {
		res, code, body := s.create(s.booking(9, 10), s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, fmt.Sprintf("%s/%d", reservationsURL, res.ID), nil, s.ownerToken)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		_, code, body = s.create(s.booking(9, 10), s.ownerToken)
		s.Equal(http.StatusCreated, code, body)
	})

	s.Run("quantity without coffee is dropped", func() {
		b := s.booking(9, 10)
		b.CoffeeQuantity = ptr.Of(5)
		res, code, body := s.create(b, s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)
		s.False(res.Coffee)
		s.Nil(res.CoffeeQuantity)
	})

	s.Run("validation errors", func() {
		past := s.booking(9, 10)
		past.StartTime = time.Now().UTC().Add(-time.Hour)
		past.EndTime = time.Now().UTC().Add(time.Hour)

		reversed := s.booking(10, 9)

		coffeeNoQuantity := s.booking(9, 10)
		coffeeNoQuantity.Coffee = ptr.Of(true)

		mismatch := s.booking(9, 10)
		mismatch.RoomID = s.otherRoomID

		missingRoom := s.booking(9, 10)
		missingRoom.RoomID = 999999

		tests := []struct {
			name         string
			body         request.CreateReservationRequest
			expectStatus int
			expectCode   string
		}{
			{name: "start in the past", body: past, expectStatus: http.StatusBadRequest, expectCode: "INVALID_TEMPORAL"},
			{name: "end before start", body: reversed, expectStatus: http.StatusBadRequest, expectCode: "INVALID_TEMPORAL"},
			{name: "coffee without quantity", body: coffeeNoQuantity, expectStatus: http.StatusBadRequest, expectCode: "INVALID_COFFEE"},
			{name: "room of another location", body: mismatch, expectStatus: http.StatusBadRequest, expectCode: "INVALID_RELATIONSHIP"},
			{name: "unknown room", body: missingRoom, expectStatus: http.StatusNotFound, expectCode: "NOT_FOUND"},
		}
		for _, tt := range tests {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, tt.body, s.ownerToken)
			httptest.AssertErrorCode(s.T(), w, tt.expectStatus, tt.expectCode)
		}
	})
}

func (s *reservationSuite) TestUpdate() {
	s.Run("only the creator may change it", func() {
		res, code, body := s.create(s.booking(9, 10), s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)
		url := fmt.Sprintf("%s/%d", reservationsURL, res.ID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url, map[string]any{"responsible": "Mallory"}, s.strangerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, "FORBIDDEN")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url, nil, s.strangerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, "FORBIDDEN")
	})

	s.Run("rescheduling over itself is not a conflict", func() {
		res, code, body := s.create(s.booking(9, 11), s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, fmt.Sprintf("%s/%d", reservationsURL, res.ID),
			map[string]any{"start_time": s.at(10), "end_time": s.at(12)}, s.ownerToken)

		var updated response.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		s.True(s.at(10).Equal(updated.StartTime))
		s.Equal("Alice", updated.Responsible)
	})

	s.Run("rescheduling onto another booking conflicts", func() {
		_, code, body := s.create(s.booking(9, 10), s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)
		res, code, body := s.create(s.booking(11, 12), s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, fmt.Sprintf("%s/%d", reservationsURL, res.ID),
			map[string]any{"start_time": s.at(9).Add(30 * time.Minute)}, s.ownerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "CONFLICT")
	})

	s.Run("turning coffee off clears the quantity", func() {
		withCoffee := s.booking(9, 10)
		withCoffee.Coffee = ptr.Of(true)
		withCoffee.CoffeeQuantity = ptr.Of(4)
		res, code, body := s.create(withCoffee, s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)
		s.Require().Equal(ptr.Of(4), res.CoffeeQuantity)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, fmt.Sprintf("%s/%d", reservationsURL, res.ID),
			map[string]any{"coffee": false}, s.ownerToken)

		var updated response.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		s.False(updated.Coffee)
		s.Nil(updated.CoffeeQuantity)
	})
}

func (s *reservationSuite) TestDelete() {
	s.Run("deleting twice reports not found", func() {
		res, code, body := s.create(s.booking(9, 10), s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)
		url := fmt.Sprintf("%s/%d", reservationsURL, res.ID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url, nil, s.ownerToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url, nil, s.ownerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, "NOT_FOUND")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.ownerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *reservationSuite) TestList() {
	s.Run("date range returns overlapping reservations", func() {
		dbtest.CreateTestReservation(s.T(), s.DB, dbtest.ReservationFixture{RoomID: s.roomID, Start: s.at(8), End: s.at(9), Responsible: "Early", CreatedBy: owner})
		dbtest.CreateTestReservation(s.T(), s.DB, dbtest.ReservationFixture{RoomID: s.roomID, Start: s.at(10), End: s.at(12), Responsible: "Middle", CreatedBy: owner})
		dbtest.CreateTestReservation(s.T(), s.DB, dbtest.ReservationFixture{RoomID: s.roomID, Start: s.at(13), End: s.at(14), Responsible: "Late", CreatedBy: owner})

		url := fmt.Sprintf("%s?start=%s&end=%s", reservationsURL,
			s.at(9).Format(time.RFC3339), s.at(11).Format(time.RFC3339))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.ownerToken)

		var list response.ListResponse[response.ReservationResponse]
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Require().Len(list.Items, 1)
		s.Equal("Middle", list.Items[0].Responsible)
		s.Equal(int64(1), list.Total)
	})
}

func (s *reservationSuite) TestParticipants() {
	s.Run("add, list, reject duplicates and remove", func() {
		res, code, body := s.create(s.booking(9, 10), s.ownerToken)
		s.Require().Equal(http.StatusCreated, code, body)
		var strangerID int64
		s.Require().NoError(s.DB.QueryRow(s.T().Context(), "SELECT id FROM users WHERE email = $1", stranger).Scan(&strangerID))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, participantsURL,
			request.CreateParticipantRequest{ReservationID: res.ID, UserID: &strangerID}, s.ownerToken)
		var added response.ParticipantResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &added)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, participantsURL,
			request.CreateParticipantRequest{ReservationID: res.ID, ManualName: ptr.Of("Guest")}, s.ownerToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, participantsURL,
			request.CreateParticipantRequest{ReservationID: res.ID, UserID: &strangerID}, s.ownerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "CONFLICT")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, participantsURL,
			request.CreateParticipantRequest{ReservationID: res.ID, UserID: &strangerID, ManualName: ptr.Of("Both")}, s.ownerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "INVALID_RELATIONSHIP")

		listURL := fmt.Sprintf("%s/%d/participants", reservationsURL, res.ID)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, listURL, nil, s.ownerToken)
		var participants []response.ParticipantResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &participants)
		s.Len(participants, 2)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, fmt.Sprintf("%s/%d", participantsURL, added.ID), nil, s.ownerToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, listURL, nil, s.ownerToken)
		var deleted response.DeletedCountResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &deleted)
		s.Equal(int64(1), deleted.Deleted)
	})
}
