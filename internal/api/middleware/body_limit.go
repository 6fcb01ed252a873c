package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartOverhead covers boundaries and part headers around the file itself
const multipartOverhead = 1 << 20

// BodyLimit caps the request body at maxBytes plus multipart framing.
// Reads past the limit fail with *http.MaxBytesError.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)
		}
		c.Next()
	}
}
