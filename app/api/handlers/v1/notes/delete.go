package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notesvault/platform/web/handler"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Tags Note
// @Security BasicAuth
// @Param id path string true "Note id"
// @Success 204
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 503 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	if err := h.Service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		return h.failure("delete", err)
	}

	return handler.Result{Status: http.StatusNoContent}
}
