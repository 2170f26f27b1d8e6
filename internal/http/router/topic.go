package router

import (
	"github.com/gin-gonic/gin"

	"aura.app/relay/internal/http/handler"
)

func TopicRouter(rg *gin.RouterGroup, h *handler.TopicHandler) {
	rg.GET("", h.List)
}
