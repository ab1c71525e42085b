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

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.render(c, http.StatusCreated, created.ID())
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param location_id query int false "Location"
// @Param active query bool false "Active flag"
// @Param min_capacity query int false "Minimum capacity"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (default 100, max 200)"
// @Success 200 {object} resdto.ListResponse[resdto.RoomResponse]
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var q reqdto.ListRoomsQuery
	if !bindQuery(c, &q) {
		return
	}
	filter := queries.RoomFilter{
		LocationID:  q.LocationID,
		Active:      q.Active,
		MinCapacity: q.MinCapacity,
	}
	list, err := h.q.List(c.Request.Context(), filter, queries.NewPage(q.Skip, q.Limit))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromRoomList(list)
	respond(c, http.StatusOK, res, err)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Update room
// @Description PUT and PATCH both apply the fields present in the body
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Delete room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Room deleted"})
}

func (h *RoomHandler) render(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromRoomView(view)
	respond(c, status, res, err)
}
