package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/ribgsilva/notesvault/platform/web/handler"
	"go.uber.org/zap"
	"net/http"
)

// Handlers serves the note routes mounted under BasePath
type Handlers struct {
	Log      *zap.SugaredLogger
	Service  *note.Service
	BasePath string
}

// ContentRequest is the body of create and update requests
type ContentRequest struct {
	Content *string `json:"content" example:"my note text"`
}

// bindContent decodes the body and checks the content field is present. Blank content is left for the service.
func bindContent(ctx *gin.Context) (*string, *handler.Result) {
	var req ContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		r := handler.Fail(http.StatusBadRequest, "invalid request body")
		return nil, &r
	}
	if req.Content == nil {
		r := handler.Fail(http.StatusBadRequest, note.ErrInvalidContent.Error())
		return nil, &r
	}
	return req.Content, nil
}

// failure renders a service error. Storage failures are logged and never echoed to the client.
func (h Handlers) failure(operation string, err error) handler.Result {
	kind := note.KindOf(err)
	switch kind {
	case note.KindInvalidContent:
		return handler.Fail(http.StatusBadRequest, err.Error())
	case note.KindNotFound:
		return handler.Fail(http.StatusNotFound, err.Error())
	case note.KindTimeout:
		h.Log.Errorw("notes", "operation", operation, "kind", kind.String(), "ERROR", err)
		return handler.Fail(http.StatusGatewayTimeout, "storage timeout")
	default:
		h.Log.Errorw("notes", "operation", operation, "kind", kind.String(), "ERROR", err)
		return handler.Fail(http.StatusServiceUnavailable, "storage unavailable")
	}
}
