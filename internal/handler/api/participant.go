package api

import (
	"net/http"

	"room-reservation/internal/domain/participant"
	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	cmds commands.ParticipantCommands
	q    queries.ParticipantQueries
}

func NewParticipantHandler(cmds commands.ParticipantCommands, q queries.ParticipantQueries) *ParticipantHandler {
	return &ParticipantHandler{cmds: cmds, q: q}
}

// @Summary Add participant
// @Description Exactly one of user_id or manual_name
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateParticipantRequest true "Participant"
// @Success 201 {object} resdto.ParticipantResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /participants [post]
func (h *ParticipantHandler) Create(c *gin.Context) {
	actor, ok := actorEmail(c)
	if !ok {
		return
	}
	var req reqdto.CreateParticipantRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	views, err := h.q.ListByReservation(c.Request.Context(), created.ReservationID())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	for _, v := range views {
		if v.ID == created.ID() {
			res, err := resdto.FromParticipantViews([]*queries.ParticipantView{v})
			if err != nil {
				httperr.AbortWithDomainError(c, err)
				return
			}
			c.JSON(http.StatusCreated, res[0])
			return
		}
	}
	httperr.AbortWithDomainError(c, participant.ErrNotFound)
}

// @Summary List participants
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {array} resdto.ParticipantResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/participants [get]
func (h *ParticipantHandler) ListByReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListByReservation(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromParticipantViews(views)
	respond(c, http.StatusOK, res, err)
}

// @Summary Remove participant
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /participants/{id} [delete]
func (h *ParticipantHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorEmail(c)
	if !ok {
		return
	}
	deleted, err := h.cmds.Delete(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if !deleted {
		httperr.AbortWithDomainError(c, participant.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Participant removed"})
}

// @Summary Remove all participants of a reservation
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.DeletedCountResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/participants [delete]
func (h *ParticipantHandler) DeleteByReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorEmail(c)
	if !ok {
		return
	}
	count, err := h.cmds.DeleteByReservation(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DeletedCountResponse{Deleted: count})
}
