package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notesvault/app/api/handlers/home"
	"github.com/ribgsilva/notesvault/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notesvault/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/ribgsilva/notesvault/platform/web/handler"
	"go.uber.org/zap"
)

// NotePaths are the prefixes the note routes are mounted on
var NotePaths = []string{"/v1/notes", "/notes"}

func MapDefaults(r *gin.Engine) {
	r.GET("/", home.Get)
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

// MapApi mounts the note routes on every NotePaths prefix, mw runs in front of all of them
func MapApi(r *gin.Engine, log *zap.SugaredLogger, svc *note.Service, mw ...gin.HandlerFunc) {
	for _, base := range NotePaths {
		h := notes.Handlers{Log: log, Service: svc, BasePath: base}

		g := r.Group(base, mw...)
		g.POST("", handler.Wrapper(h.Create))
		g.GET("", handler.Wrapper(h.List))
		g.GET("/:id", handler.Wrapper(h.Get))
		g.PUT("/:id", handler.Wrapper(h.Update))
		g.DELETE("/:id", handler.Wrapper(h.Delete))
	}
}
