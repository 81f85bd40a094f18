package rest

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-realtime-comments/domain"
	"github.com/Guyuepp/go-realtime-comments/internal/realtime"
	"github.com/Guyuepp/go-realtime-comments/internal/rest/middleware"
	"github.com/Guyuepp/go-realtime-comments/internal/rest/request"
)

// Control frames
const (
	EventRegister   = "register"
	EventRegistered = "registered"
	EventError      = "error"
)

var validate = validator.New()

// SocketHandler upgrades /ws connections and binds them to the hub and presence registry.
type SocketHandler struct {
	hub        *realtime.Hub
	presence   domain.PresenceRegistry
	secret     string
	sendBuffer int
	upgrader   websocket.Upgrader
}

func NewSocketHandler(hub *realtime.Hub, presence domain.PresenceRegistry, secret string, sendBuffer int, allowedOrigins []string) *SocketHandler {
	allowAll := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")
	return &SocketHandler{
		hub:        hub,
		presence:   presence,
		secret:     secret,
		sendBuffer: sendBuffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowAll || origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// Serve blocks for the lifetime of the connection.
// A bearer token in the Authorization header or the token query registers the user right away;
// a present but invalid token is rejected before the upgrade.
func (h *SocketHandler) Serve(c *gin.Context) {
	userID, authed, err := h.handshakeUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: err.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.Warnf("websocket upgrade failed: %v", err)
		return
	}

	client := realtime.NewClient(conn, h.sendBuffer)
	h.hub.Join(client)
	if authed {
		h.presence.Register(userID, client)
	}

	go client.WritePump()
	client.ReadPump(h.handleInbound)
	h.hub.Leave(client)
}

func (h *SocketHandler) handshakeUser(c *gin.Context) (int64, bool, error) {
	token := c.Query("token")
	if header := c.GetHeader("Authorization"); header != "" {
		t, ok := middleware.BearerToken(header)
		if !ok {
			return 0, false, middleware.ErrInvalidToken
		}
		token = t
	}
	if token == "" {
		return 0, false, nil
	}
	userID, err := middleware.ParseToken(h.secret, token)
	if err != nil {
		return 0, false, middleware.ErrInvalidToken
	}
	return userID, true, nil
}

func (h *SocketHandler) handleInbound(cl *realtime.Client, in realtime.Inbound) {
	switch in.Event {
	case EventRegister:
		var req request.Register
		if err := json.Unmarshal(in.Data, &req); err != nil {
			h.reply(cl, EventError, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
		if err := validate.Struct(req); err != nil {
			h.reply(cl, EventError, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
		userID, err := middleware.ParseToken(h.secret, req.Token)
		if err != nil {
			h.reply(cl, EventError, ResponseError{Message: middleware.ErrInvalidToken.Error()})
			return
		}
		h.presence.Register(userID, cl)
		h.reply(cl, EventRegistered, gin.H{"user_id": userID})
	default:
		logrus.Debugf("client %s sent unknown event %q", cl.ID(), in.Event)
	}
}

func (h *SocketHandler) reply(cl *realtime.Client, event string, payload any) {
	if err := cl.Send(event, payload); err != nil {
		logrus.Warnf("reply %s to client %s dropped: %v", event, cl.ID(), err)
	}
}
