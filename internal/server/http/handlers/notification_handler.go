package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/takaex/takaex/internal/server/http/dto"
)

// NotificationHandler manages the notification feed endpoints.
type NotificationHandler struct {
	facade NotificationFacade
	now    func() time.Time
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade, now: time.Now}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	feed, err := h.facade.Notifications(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationFeed(feed, h.now()))
}

// Clear handles DELETE /api/notifications.
func (h *NotificationHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearNotifications(c.Request.Context()); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
