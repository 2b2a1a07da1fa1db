package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notesvault/platform/web/handler"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description Every note, newest first
// @Tags Note
// @Produce json
// @Security BasicAuth
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Failure 503 {object} handler.Error
// @Router /v1/notes [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	notes, err := h.Service.List(ctx.Request.Context())
	if err != nil {
		return h.failure("list", err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   notes,
	}
}
