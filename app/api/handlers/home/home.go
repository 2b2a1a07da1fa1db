package home

import (
	_ "embed"
	"github.com/gin-gonic/gin"
	"net/http"
)

//go:embed index.html
var page []byte

func Get(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
