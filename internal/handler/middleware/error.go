package middleware

import (
	"log/slog"
	"net/http"

	"museum-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that handlers recorded without writing a
// response themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		c.JSON(status, httperr.NewResponse(c, status, http.StatusText(status), nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
