package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result is the JSON shape shared by every mutating endpoint.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK sends a success result with a message
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Result{Success: true, Message: message})
}

// Fail sends a failure result with the given status and message
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Result{Success: false, Message: message})
}

// BadRequest sends a 400 validation failure
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 failure
func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

// Unavailable sends a 500 failure for an upstream that is down or misbehaving.
// Detail belongs in the server log, never in the body.
func Unavailable(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
