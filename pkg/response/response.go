package response

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

// ErrorBody is the uniform error contract: details are only populated in
// development mode so internal failures never leak to production clients.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

var debug atomic.Bool

// SetDebug toggles inclusion of underlying error details in responses.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// JSON sends a success response with the entity payload as the body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	body := ErrorBody{Error: appErr.Message}
	if debug.Load() && appErr.Err != nil {
		body.Details = appErr.Err.Error()
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, body)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
