package httperr

import (
	"github.com/gin-gonic/gin"
)

// requestIDKey is where the logging middleware stores the request ID.
const requestIDKey = "request_id"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail    any    `json:"detail,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail, RequestID: c.GetString(requestIDKey)}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the public message and keeps err on the context for
// the request log. Operators quote the request ID when reporting a failure.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
