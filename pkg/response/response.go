package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the only error shape clients see. It deliberately carries no
// timestamp or request id so equal failures serialize to equal bytes.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageBody is returned by endpoints that only acknowledge an action.
type MessageBody struct {
	Message string `json:"message"`
}

func JSON(c *gin.Context, status int, body any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, body)
}

func Message(c *gin.Context, status int, message string) {
	JSON(c, status, MessageBody{Message: message})
}

// Error writes {error} and aborts the handler chain.
func Error(c *gin.Context, status int, message string) {
	ErrorCode(c, status, message, "")
}

// ErrorCode writes {error, code} and aborts the handler chain.
func ErrorCode(c *gin.Context, status int, message, code string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, ErrorBody{Error: message, Code: code})
}

// Internal hides infrastructure detail in production.
func Internal(c *gin.Context, production bool, err error) {
	msg := "Internal server error"
	if !production && err != nil {
		msg = err.Error()
	}
	Error(c, http.StatusInternalServerError, msg)
}
