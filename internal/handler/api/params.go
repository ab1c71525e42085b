package api

import (
	"net/http"
	"strconv"

	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid request", err.Error())
		return false
	}
	return true
}

func bindQuery(c *gin.Context, q any) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid query parameters", err.Error())
		return false
	}
	return true
}

func actorEmail(c *gin.Context) (string, bool) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "Unauthorized", nil)
		return "", false
	}
	return email, true
}

// respond renders a mapped DTO, treating a mapping failure as internal.
func respond[T any](c *gin.Context, status int, body T, err error) {
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(status, body)
}
