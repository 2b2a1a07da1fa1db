package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notesvault/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Security BasicAuth
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 503 {object} handler.Error
// @Router /v1/notes/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	found, err := h.Service.Find(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		return h.failure("get", err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   found,
	}
}
