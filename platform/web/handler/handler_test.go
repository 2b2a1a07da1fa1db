package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWrapper(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/body", Wrapper(func(ctx *gin.Context) Result {
		return Result{
			Status:  http.StatusCreated,
			Headers: map[string]string{"Location": "/body/1"},
			Body:    map[string]string{"id": "1"},
		}
	}))
	engine.GET("/empty", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusNoContent}
	}))
	engine.GET("/fail", Wrapper(func(ctx *gin.Context) Result {
		return Fail(http.StatusNotFound, "gone")
	}))

	t.Run("body and headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/body", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/body/1", w.Header().Get("Location"))
		assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
	})

	t.Run("nil body writes only the status", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/empty", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("error body", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"gone"}`, w.Body.String())
	})
}
