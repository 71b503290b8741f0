// Package httperr defines the error envelope shared by the API handlers and
// the error middleware.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON error body sent to clients. Status is carried out of
// band so the error middleware can replay the envelope with the right code.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the envelope and records err on the gin context so
// the request log carries the cause. msg is all the client sees; err stays
// server side.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
