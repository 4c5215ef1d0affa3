package httperr

import (
	"net/http"

	"beer-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithStatus records err for logging and answers with an empty body.
func AbortWithStatus(c *gin.Context, status int, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatus(status)
}

// FromError is the single mapping from service and binding errors to HTTP responses.
func FromError(c *gin.Context, err error) {
	var verr *errs.ValidationError
	switch {
	case errs.As(err, &verr):
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", verr.Violations)
	case errs.Is(err, errs.ErrNotFound):
		AbortWithStatus(c, http.StatusNotFound, err)
	case errs.Is(err, errs.ErrConflict):
		AbortWithError(c, http.StatusConflict, err, "Record was modified by another request", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
