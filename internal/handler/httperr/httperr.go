package httperr

import (
	"net/http"

	"room-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	// gin only keeps Type and Meta when handed a *gin.Error.
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError picks the status from the error kind alone.
// Internal errors never expose their message.
func AbortWithDomainError(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)
	msg := err.Error()
	if kind == errs.KindInternal {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, kind.String(), msg, nil)
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindInvalidTemporal, errs.KindInvalidRelationship, errs.KindInvalidCoffee, errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
