package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/ribgsilva/notesvault/platform/web/handler"
	"net/http"
)

// Update godoc
// @Summary Update a note
// @Description Replaces the content of a note, id and createdAt never change
// @Tags Note
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path string true "Note id"
// @Param note body ContentRequest true "Note content"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 503 {object} handler.Error
// @Router /v1/notes/{id} [put]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	content, failed := bindContent(ctx)
	if failed != nil {
		return *failed
	}

	updated, err := h.Service.Update(ctx.Request.Context(), ctx.Param("id"), note.UpdateNote{Content: content})
	if err != nil {
		return h.failure("update", err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   updated,
	}
}
