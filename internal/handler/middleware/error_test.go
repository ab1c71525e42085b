//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/handler/middleware"
	"room-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders a public error recorded without a response", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusConflict}
			resp.Error.Message = "taken"
			resp.Error.Code = "CONFLICT"
			_ = c.Error(&gin.Error{Err: errors.New("taken"), Type: gin.ErrorTypePublic, Meta: resp})
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusConflict, "CONFLICT")
	})

	t.Run("falls back to 500 for private errors", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/", func(c *gin.Context) {
			_ = c.Error(errors.New("boom"))
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("leaves written responses alone", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, nil, "NOT_FOUND", "missing", nil)
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "missing")
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/", func(c *gin.Context) {
		panic("nil map")
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/", nil, "")
	httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
}
