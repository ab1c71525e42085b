//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/handler/middleware"
	"room-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := middleware.NewMetrics()

	router := gin.New()
	router.Use(metrics.Middleware())
	router.GET("/reservations/:id", func(c *gin.Context) {
		switch c.Param("id") {
		case "1":
			c.Status(http.StatusOK)
		case "2":
			httperr.AbortWithError(c, http.StatusConflict, nil, "CONFLICT", "overlap", nil)
		default:
			httperr.AbortWithDomainError(c, reservation.ErrTimeConflict)
		}
	})

	httptest.PerformRequest(t, router, http.MethodGet, "/reservations/1", nil, "")
	httptest.PerformRequest(t, router, http.MethodGet, "/reservations/2", nil, "")
	httptest.PerformRequest(t, router, http.MethodGet, "/reservations/3", nil, "")
	httptest.PerformRequest(t, router, http.MethodGet, "/nowhere", nil, "")

	expected := `
# HELP room_reservation_request_errors_total Error responses by route and error code.
# TYPE room_reservation_request_errors_total counter
room_reservation_request_errors_total{code="CONFLICT",route="/reservations/:id"} 2
`
	require.NoError(t, testutil.GatherAndCompare(metrics.Registry(), strings.NewReader(expected), "room_reservation_request_errors_total"))

	count, err := testutil.GatherAndCount(metrics.Registry(), "room_reservation_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "one series per method, route and status")
}
