package respond

import (
	"github.com/gin-gonic/gin"

	"github.com/RevanthDadi9/analyzer/internal/shared/telemetry"
)

// RequestIDKey is the gin context key under which the request ID
// middleware stores the current request's ID. It lives here so both the
// middleware and the error writer share one definition.
const RequestIDKey = "requestId"

// ErrorResponse is the flat error body clients receive. Internal failure
// detail stays in the server log; the message here is intentionally generic.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a standardized error response and logs the failure server-side.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString(RequestIDKey),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
