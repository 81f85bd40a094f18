package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-realtime-comments/internal/realtime"
	"github.com/Guyuepp/go-realtime-comments/internal/rest"
)

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func newSocketServer(t *testing.T) (*httptest.Server, *realtime.Hub, *realtime.Presence) {
	presence := realtime.NewPresence()
	hub := realtime.NewHub(presence)
	h := rest.NewSocketHandler(hub, presence, testSecret, 8, nil)

	r := gin.New()
	r.GET("/ws", h.Serve)
	r.GET("/health", rest.NewHealthHandler(hub, presence).Health)
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return srv, hub, presence
}

func dial(t *testing.T, srv *httptest.Server, query string, header http.Header) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestSocketHandshakeToken(t *testing.T) {
	srv, hub, presence := newSocketServer(t)

	conn := dial(t, srv, "?token="+tokenFor(t, 7), nil)
	assert.Eventually(t, func() bool {
		_, ok := presence.Lookup(7)
		return ok
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, hub.Connected())

	ch, _ := presence.Lookup(7)
	require.NoError(t, ch.Send("notification", map[string]string{"message": "hi"}))
	f := readFrame(t, conn)
	assert.Equal(t, "notification", f.Event)
	assert.JSONEq(t, `{"message":"hi"}`, string(f.Data))

	_ = conn.Close()
	assert.Eventually(t, func() bool {
		_, ok := presence.Lookup(7)
		return !ok && hub.Connected() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSocketHandshakeHeader(t *testing.T) {
	srv, _, presence := newSocketServer(t)

	dial(t, srv, "", http.Header{"Authorization": []string{"Bearer " + tokenFor(t, 8)}})
	assert.Eventually(t, func() bool {
		_, ok := presence.Lookup(8)
		return ok
	}, time.Second, 10*time.Millisecond)
}

func TestSocketRejectsInvalidToken(t *testing.T) {
	srv, hub, _ := newSocketServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=bogus"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, hub.Connected())
}

func TestSocketRegisterFrame(t *testing.T) {
	srv, hub, presence := newSocketServer(t)

	conn := dial(t, srv, "", nil)
	assert.Eventually(t, func() bool { return hub.Connected() == 1 }, time.Second, 10*time.Millisecond)
	_, ok := presence.Lookup(9)
	assert.False(t, ok)

	require.NoError(t, conn.WriteJSON(gin.H{"event": "register", "data": gin.H{"token": "bogus"}}))
	f := readFrame(t, conn)
	assert.Equal(t, rest.EventError, f.Event)

	require.NoError(t, conn.WriteJSON(gin.H{"event": "register", "data": gin.H{}}))
	f = readFrame(t, conn)
	assert.Equal(t, rest.EventError, f.Event)

	require.NoError(t, conn.WriteJSON(gin.H{"event": "register", "data": gin.H{"token": tokenFor(t, 9)}}))
	f = readFrame(t, conn)
	assert.Equal(t, rest.EventRegistered, f.Event)
	assert.JSONEq(t, `{"user_id":9}`, string(f.Data))

	_, ok = presence.Lookup(9)
	assert.True(t, ok)
}

func TestSocketBroadcastAndHealth(t *testing.T) {
	srv, hub, _ := newSocketServer(t)

	a := dial(t, srv, "", nil)
	b := dial(t, srv, "?token="+tokenFor(t, 3), nil)
	assert.Eventually(t, func() bool { return hub.Connected() == 2 }, time.Second, 10*time.Millisecond)

	hub.EmitAll("commentCreated", gin.H{"id": 1})
	for _, conn := range []*websocket.Conn{a, b} {
		f := readFrame(t, conn)
		assert.Equal(t, "commentCreated", f.Event)
	}

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 2, body["connected"])
}
