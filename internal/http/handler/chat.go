package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"aura.app/relay/internal/http/dto"
	"aura.app/relay/internal/service"
)

const (
	errInvalidRequestBody = "Invalid request body"
	errGenerationFailed   = "Failed to get response from AI model"
)

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.DebugContext(ctx, "invalid chat request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidRequestBody})
		return
	}

	reply, err := h.chatService.Reply(ctx, *req.Topic, *req.UserInput)
	if err != nil {
		// Generation failures are logged by the service.
		if !errors.Is(err, service.ErrGeneration) {
			slog.ErrorContext(ctx, "chat reply failed", "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errGenerationFailed})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}
