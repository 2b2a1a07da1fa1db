package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/ribgsilva/notesvault/platform/web/handler"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Stores a new note, surrounding whitespace of the content is trimmed
// @Tags Note
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param note body ContentRequest true "Note content"
// @Success 201 {object} note.Note
// @Header 201 {string} Location "/v1/notes/{id}"
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 503 {object} handler.Error
// @Router /v1/notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	content, failed := bindContent(ctx)
	if failed != nil {
		return *failed
	}

	created, err := h.Service.Create(ctx.Request.Context(), note.NewNote{Content: content})
	if err != nil {
		return h.failure("create", err)
	}

	return handler.Result{
		Status:  http.StatusCreated,
		Headers: map[string]string{"Location": h.BasePath + "/" + created.ID},
		Body:    created,
	}
}
