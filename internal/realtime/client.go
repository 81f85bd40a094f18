package realtime

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

const (
	DefaultSendBuffer = 64

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var (
	ErrChannelClosed = errors.New("channel closed")
	ErrChannelFull   = errors.New("channel send queue is full")
)

var validate = validator.New()

// Envelope is the frame written to clients.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Inbound is a control frame sent by a client, e.g. {"event":"register","data":{...}}.
type Inbound struct {
	Event string          `json:"event" validate:"required,max=64"`
	Data  json.RawMessage `json:"data"`
}

// Client is a websocket connection with a buffered outbound queue.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

var _ domain.Channel = (*Client)(nil)

func NewClient(conn *websocket.Conn, sendBuffer int) *Client {
	if sendBuffer <= 0 {
		sendBuffer = DefaultSendBuffer
	}
	return &Client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

func (c *Client) ID() string {
	return c.id
}

// Send never blocks: a full queue drops the frame and reports ErrChannelFull.
func (c *Client) Send(event string, payload any) error {
	data, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrChannelClosed
	}
	select {
	case c.send <- data:
		return nil
	default:
		return ErrChannelFull
	}
}

// Close stops the write pump. Safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// WritePump drains the send queue to the connection and keeps it alive with pings.
// It owns all writes on conn.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logrus.Warnf("write to client %s failed: %v", c.id, err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadPump reads control frames until the connection fails, then closes the client.
func (c *Client) ReadPump(handle func(c *Client, in Inbound)) {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var in Inbound
		if err := c.conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.Warnf("client %s read error: %v", c.id, err)
			}
			return
		}
		if err := validate.Struct(in); err != nil {
			logrus.Warnf("client %s sent invalid frame: %v", c.id, err)
			continue
		}
		handle(c, in)
	}
}
