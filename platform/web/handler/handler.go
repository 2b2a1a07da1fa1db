package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every api handler returns, the Wrapper turns it into the http response
type Result struct {
	Status  int
	Headers map[string]string
	// Body is rendered as json, a nil Body writes only the status
	Body any
}

// Error is the body of every failed request
type Error struct {
	Message string `json:"error" example:"content must not be blank"`
}

// Wrapper adapts a Result returning func into a gin.HandlerFunc
func Wrapper(f func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := f(ctx)

		for k, v := range result.Headers {
			ctx.Header(k, v)
		}

		if result.Body == nil {
			ctx.Status(result.Status)
			return
		}
		ctx.JSON(result.Status, result.Body)
	}
}

// Fail is a shortcut for a Result carrying an Error body
func Fail(status int, message string) Result {
	return Result{
		Status: status,
		Body:   Error{Message: message},
	}
}
