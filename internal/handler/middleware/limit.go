package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LimitBody caps request bodies; reads past n bytes fail and binding
// reports a bad request.
func LimitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
