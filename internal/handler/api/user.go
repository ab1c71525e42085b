package api

import (
	"net/http"

	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	q queries.UserQueries
}

func NewUserHandler(q queries.UserQueries) *UserHandler {
	return &UserHandler{q: q}
}

// @Summary Search users
// @Description Case-insensitive match on name or email
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Param limit query int false "Max results (default 20, max 100)"
// @Success 200 {array} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	var q reqdto.SearchUsersQuery
	if !bindQuery(c, &q) {
		return
	}
	views, err := h.q.Search(c.Request.Context(), q.Q, q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromUserViews(views)
	respond(c, http.StatusOK, res, err)
}

// @Summary List users
// @Description Admin only
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search term"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (default 100, max 200)"
// @Success 200 {object} resdto.ListResponse[resdto.UserResponse]
// @Failure 403 {object} httperr.Response
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := actorEmail(c)
	if !ok {
		return
	}
	var q reqdto.ListUsersQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.q.List(c.Request.Context(), actor, q.Q, queries.NewPage(q.Skip, q.Limit))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromUserList(list)
	respond(c, http.StatusOK, res, err)
}

// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromUserView(view)
	respond(c, http.StatusOK, res, err)
}
