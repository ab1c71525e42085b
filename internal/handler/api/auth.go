package api

import (
	"net/http"

	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/cookie"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/jwt"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	users      queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		users:      users,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary Login
// @Description Exchange an identity provider token for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.IDToken)
	if err != nil {
		if errs.Is(err, jwt.ErrInvalidIdentity) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.CodeUnauthorized, "Invalid identity token", nil)
			return
		}
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.users.GetByID(c.Request.Context(), result.User.ID())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	user, err := resdto.FromUserView(view)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, result.AccessToken, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User:        user,
	})
}

// @Summary Logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "User not authenticated", nil)
		return
	}

	view, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromUserView(view)
	respond(c, http.StatusOK, res, err)
}
