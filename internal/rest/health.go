package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-realtime-comments/internal/realtime"
)

type HealthHandler struct {
	hub      *realtime.Hub
	presence *realtime.Presence
}

func NewHealthHandler(hub *realtime.Hub, presence *realtime.Presence) *HealthHandler {
	return &HealthHandler{hub: hub, presence: presence}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"connected": h.hub.Connected(),
		"online":    h.presence.Online(),
	})
}
