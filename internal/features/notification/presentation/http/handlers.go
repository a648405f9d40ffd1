package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"promptcraft/backend/internal/features/notification/application"
)

// NotificationHandler exposes the active toasts.
type NotificationHandler struct {
	toasts *application.ToastService
}

func NewNotificationHandler(toasts *application.ToastService) *NotificationHandler {
	return &NotificationHandler{toasts: toasts}
}

// ListHandler returns the toasts that are still visible.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.toasts.Active()})
}
