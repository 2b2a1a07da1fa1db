package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBasic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/private", Basic("admin", "admin"), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(gin.AuthUserKey))
	})

	tests := []struct {
		name       string
		user, pass string
		setAuth    bool
		wantStatus int
	}{
		{name: "no credentials", wantStatus: http.StatusUnauthorized},
		{name: "wrong password", user: "admin", pass: "nope", setAuth: true, wantStatus: http.StatusUnauthorized},
		{name: "wrong user", user: "root", pass: "admin", setAuth: true, wantStatus: http.StatusUnauthorized},
		{name: "valid credentials", user: "admin", pass: "admin", setAuth: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.setAuth {
				r.SetBasicAuth(tt.user, tt.pass)
			}
			w := httptest.NewRecorder()

			engine.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="notesvault"`, w.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
			} else {
				assert.Equal(t, "admin", w.Body.String())
			}
		})
	}
}
