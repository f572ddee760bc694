package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Raw writes a pre-encoded JSON body with the given status. Used for
// analyzer pass-through responses that must not be re-marshalled.
func Raw(c *gin.Context, status int, body []byte) {
	c.Data(status, "application/json", body)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}
