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

type LocationHandler struct {
	cmds commands.LocationCommands
	q    queries.LocationQueries
}

func NewLocationHandler(cmds commands.LocationCommands, q queries.LocationQueries) *LocationHandler {
	return &LocationHandler{cmds: cmds, q: q}
}

// @Summary Create location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLocationRequest true "Location"
// @Success 201 {object} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	var req reqdto.CreateLocationRequest
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

// @Summary List locations
// @Description Locations ordered by name
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Filter by active flag"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (default 100, max 200)"
// @Success 200 {object} resdto.ListResponse[resdto.LocationResponse]
// @Router /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	var q reqdto.ListLocationsQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.q.List(c.Request.Context(), queries.LocationFilter{Active: q.Active}, queries.NewPage(q.Skip, q.Limit))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromLocationList(list)
	respond(c, http.StatusOK, res, err)
}

// @Summary Get location
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} resdto.LocationResponse
// @Failure 404 {object} httperr.Response
// @Router /locations/{id} [get]
func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Update location
// @Description PUT and PATCH both apply the fields present in the body
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param request body reqdto.UpdateLocationRequest true "Fields to change"
// @Success 200 {object} resdto.LocationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /locations/{id} [patch]
func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateLocationRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Delete location
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /locations/{id} [delete]
func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Location deleted"})
}

func (h *LocationHandler) render(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromLocationView(view)
	respond(c, status, res, err)
}
