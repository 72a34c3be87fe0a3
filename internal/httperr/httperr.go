package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteError maps a classified error to its HTTP status. Unclassified
// errors never leak their message to the caller.
func WriteError(c *gin.Context, err error) {
	ae, ok := AsApp(err)
	if !ok {
		Internal(c, "internal_error", "Error interno.")
		return
	}

	switch ae.Kind {
	case KindValidation:
		Write(c, http.StatusBadRequest, ae.Code, ae.Message)
	case KindNotFound:
		Write(c, http.StatusNotFound, ae.Code, ae.Message)
	case KindBusiness:
		Write(c, http.StatusUnprocessableEntity, ae.Code, ae.Message)
	case KindExternal:
		Write(c, http.StatusBadGateway, ae.Code, ae.Message)
	default:
		Internal(c, ae.Code, ae.Message)
	}
}
