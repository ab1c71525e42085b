//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := map[errs.Kind]int{
		errs.KindNotFound:            http.StatusNotFound,
		errs.KindConflict:            http.StatusConflict,
		errs.KindInvalidTemporal:     http.StatusBadRequest,
		errs.KindInvalidRelationship: http.StatusBadRequest,
		errs.KindInvalidCoffee:       http.StatusBadRequest,
		errs.KindValidation:          http.StatusBadRequest,
		errs.KindForbidden:           http.StatusForbidden,
		errs.KindInternal:            http.StatusInternalServerError,
	}
	for kind, want := range cases {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Equal(t, want, httperr.StatusOf(kind))
		})
	}
}

func TestAbortWithDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (*httptest.ResponseRecorder, httperr.Response) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		httperr.AbortWithDomainError(c, err)

		var body httperr.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	t.Run("records a public error carrying the response", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		conflict := errs.NewKind("the room is already booked", errs.ErrConflict)

		httperr.AbortWithDomainError(c, conflict)

		recorded := c.Errors.Last()
		require.NotNil(t, recorded)
		assert.True(t, recorded.IsType(gin.ErrorTypePublic))
		assert.ErrorIs(t, recorded.Err, conflict)
		resp, ok := recorded.Meta.(httperr.Response)
		require.True(t, ok, "meta should hold the rendered response")
		assert.Equal(t, http.StatusConflict, resp.Status)
		assert.Equal(t, "CONFLICT", resp.Error.Code)
	})

	t.Run("classified error keeps its message", func(t *testing.T) {
		notFound := errs.NewKind("room not found", errs.ErrNotFound)
		w, body := run(errs.Wrap(notFound, "load room"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Contains(t, body.Error.Message, "room not found")
	})

	t.Run("unclassified error is hidden", func(t *testing.T) {
		w, body := run(errors.New("pq: connection reset"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Equal(t, "Internal server error", body.Error.Message)
	})
}
