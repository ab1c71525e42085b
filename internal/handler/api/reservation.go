package api

import (
	"net/http"

	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a room. Overlapping bookings of the same room are rejected with 409.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := actorEmail(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.render(c, http.StatusCreated, created.ID())
}

// @Summary List reservations
// @Description With start and end the reservations overlapping the interval are returned
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param start query string false "RFC3339 start"
// @Param end query string false "RFC3339 end"
// @Param room_id query int false "Room"
// @Param location_id query int false "Location"
// @Param room query string false "Room name contains"
// @Param location query string false "Location name contains"
// @Param responsible query string false "Responsible contains"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (default 100, max 200)"
// @Success 200 {object} resdto.ListResponse[resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	var q reqdto.ListReservationsQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.q.List(c.Request.Context(), q.ToFilter(), queries.NewPage(q.Skip, q.Limit))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromReservationList(list)
	respond(c, http.StatusOK, res, err)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Replace reservation
// @Description Only the creator may change a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.ReplaceReservationRequest true "Reservation"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Replace(c *gin.Context) {
	var req reqdto.ReplaceReservationRequest
	h.update(c, &req, func() commands.UpdateReservationInput { return req.ToInput() })
}

// @Summary Patch reservation
// @Description Omitted fields keep their stored value
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.PatchReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) Patch(c *gin.Context) {
	var req reqdto.PatchReservationRequest
	h.update(c, &req, func() commands.UpdateReservationInput { return req.ToInput() })
}

// @Summary Delete reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorEmail(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Reservation deleted"})
}

func (h *ReservationHandler) update(c *gin.Context, req any, input func() commands.UpdateReservationInput) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorEmail(c)
	if !ok {
		return
	}
	if !bindJSON(c, req) {
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), id, input(), actor); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

func (h *ReservationHandler) render(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	respond(c, status, res, err)
}
