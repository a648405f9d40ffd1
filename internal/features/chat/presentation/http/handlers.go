package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"promptcraft/backend/internal/config"
	"promptcraft/backend/internal/features/chat/application"
)

// ChatHandler holds the chat service and app config service.
type ChatHandler struct {
	chatService      *application.ChatService
	appConfigService config.AppConfigService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *application.ChatService, appConfigService config.AppConfigService) *ChatHandler {
	return &ChatHandler{
		chatService:      chatService,
		appConfigService: appConfigService,
	}
}

type sendRequest struct {
	Message string `json:"message"`
}

// ListMessagesHandler returns the chat log and whether a reply is pending.
func (h *ChatHandler) ListMessagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"messages": h.chatService.Messages(),
		"pending":  h.chatService.Pending(),
	})
}

// SendMessageHandler forwards one user message to the assistant.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Load app config to get the model parameters
	appConfig, err := h.appConfigService.LoadAppConfig()
	if err != nil {
		log.Println("[ERROR] Failed to load app config:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load app config: " + err.Error()})
		return
	}

	msg, err := h.chatService.Send(c.Request.Context(), req.Message, appConfig.ModelParams)
	switch {
	case errors.Is(err, application.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, application.ErrReplyPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg, "messages": h.chatService.Messages()})
}

// ClearMessagesHandler empties the chat log.
func (h *ChatHandler) ClearMessagesHandler(c *gin.Context) {
	if err := h.chatService.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
}

func (h *ChatHandler) Register(r gin.IRouter) {
	chatGroup := r.Group("/chat")
	{
		chatGroup.GET("/messages", h.ListMessagesHandler)
		chatGroup.POST("/messages", h.SendMessageHandler)
		chatGroup.DELETE("/messages", h.ClearMessagesHandler)
	}
}
