package router

import (
	"github.com/gin-gonic/gin"

	"aura.app/relay/internal/http/handler"
)

func ChatRouter(rg *gin.RouterGroup, h *handler.ChatHandler) {
	rg.POST("", h.Chat)
}
