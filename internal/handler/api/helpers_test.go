//go:build unit

package api_test

import (
	"net/http"

	"room-reservation/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const (
	testUserID = int64(1)
	testActor  = "owner@example.com"
	testToken  = "bearer-token"
)

// fakeAuth stands in for RequireAuth: any bearer token is the test user.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}
	c.Set("user_id", testUserID)
	c.Set("user_email", testActor)
	c.Set("user_name", "Owner")
	c.Next()
}
