package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope. Details carries the
// underlying failure and is omitted in release mode.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error writes an error response with the given status and message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// ErrorWithDetail writes an error response including the underlying error
// detail, unless the router runs in release mode where internals are
// suppressed from clients.
func ErrorWithDetail(c *gin.Context, status int, message string, err error) {
	resp := ErrorResponse{
		Success: false,
		Error:   message,
	}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		resp.Details = err.Error()
	}
	c.JSON(status, resp)
}
