package httperr

import (
	"net/http"

	"estate-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
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

var statusByCode = map[errs.Code]int{
	errs.CodeUnauthenticated:    http.StatusUnauthorized,
	errs.CodePermissionDenied:   http.StatusForbidden,
	errs.CodeInvalidArgument:    http.StatusBadRequest,
	errs.CodeNotFound:           http.StatusNotFound,
	errs.CodeAlreadyExists:      http.StatusConflict,
	errs.CodeFailedPrecondition: http.StatusConflict,
	errs.CodeInternal:           http.StatusInternalServerError,
}

func StatusOf(code errs.Code) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Abort translates a usecase error into its HTTP response. Internal errors
// never leak their message.
func Abort(c *gin.Context, err error) {
	code := errs.CodeOf(err)
	status := StatusOf(code)

	msg := "Internal error"
	var detail any
	var ce *errs.Error
	if code != errs.CodeInternal && errs.As(err, &ce) {
		msg = ce.Message()
		if d := ce.Detail(); len(d) > 0 {
			detail = d
		}
	}

	resp := Response{Status: status}
	resp.Error.Code = string(code)
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
