package router

import (
	"github.com/gin-gonic/gin"

	"aura.app/relay/internal/http/handler"
	"aura.app/relay/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		chatHandler := handler.NewChatHandler(services.Chat())
		ChatRouter(api.Group("/chat"), chatHandler)

		topicHandler := handler.NewTopicHandler(services.Topics())
		TopicRouter(api.Group("/topics"), topicHandler)
	}
}
