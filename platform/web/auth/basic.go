package auth

import (
	"crypto/subtle"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notesvault/platform/web/handler"
	"net/http"
	"strconv"
)

// Realm is sent back in the WWW-Authenticate header
const Realm = "notesvault"

// Basic returns a middleware that only lets requests carrying the given credentials through. Rejected requests get a
// 401 with the same error body as every other failure.
func Basic(user, pass string) gin.HandlerFunc {
	challenge := "Basic realm=" + strconv.Quote(Realm)

	return func(ctx *gin.Context) {
		u, p, ok := ctx.Request.BasicAuth()
		if !ok || !equal(u, user) || !equal(p, pass) {
			ctx.Header("WWW-Authenticate", challenge)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "unauthorized"})
			return
		}
		ctx.Set(gin.AuthUserKey, u)
		ctx.Next()
	}
}

func equal(given, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}
