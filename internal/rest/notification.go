package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-realtime-comments/domain"
	"github.com/Guyuepp/go-realtime-comments/internal/rest/response"
)

// NotificationHandler serves the current user's notifications
type NotificationHandler struct {
	Service domain.NotificationUsecase
}

func NewNotificationHandler(svc domain.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		Service: svc,
	}
}

// List returns the current user's notifications, newest first. ?unread=true keeps unread ones only.
func (h *NotificationHandler) List(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	unreadOnly := c.Query("unread") == "true"

	ns, err := h.Service.List(c.Request.Context(), uid, unreadOnly)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewNotificationsFromDomain(ns))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	n, err := h.Service.MarkRead(c.Request.Context(), id, uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewNotificationFromDomain(&n))
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Service.MarkAllRead(c.Request.Context(), uid); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) DeleteOne(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteOne(c.Request.Context(), id, uid); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) DeleteAll(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	n, err := h.Service.DeleteAll(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
