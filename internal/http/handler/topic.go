package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aura.app/relay/internal/http/dto"
	"aura.app/relay/internal/service"
)

type TopicHandler struct {
	topicService service.TopicService
}

func NewTopicHandler(topicService service.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

func (h *TopicHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToTopicResponses(h.topicService.List()))
}
