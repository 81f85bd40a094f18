package realtime

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

// Hub is the set of every connected channel, registered in Presence or not.
type Hub struct {
	presence domain.PresenceRegistry

	mu      sync.RWMutex
	clients map[string]domain.Channel
}

var _ domain.Broadcaster = (*Hub)(nil)

func NewHub(presence domain.PresenceRegistry) *Hub {
	return &Hub{
		presence: presence,
		clients:  make(map[string]domain.Channel),
	}
}

// Join adds ch to the broadcast set.
func (h *Hub) Join(ch domain.Channel) {
	h.mu.Lock()
	h.clients[ch.ID()] = ch
	n := len(h.clients)
	h.mu.Unlock()
	logrus.Infof("client %s connected (%d connected)", ch.ID(), n)
}

// Leave removes ch from the broadcast set and drops its presence entry if still current.
func (h *Hub) Leave(ch domain.Channel) {
	h.mu.Lock()
	delete(h.clients, ch.ID())
	n := len(h.clients)
	h.mu.Unlock()
	h.presence.Unregister(ch)
	logrus.Infof("client %s disconnected (%d connected)", ch.ID(), n)
}

// EmitAll sends to a snapshot of connected channels; failed sends are logged and skipped.
func (h *Hub) EmitAll(event string, payload any) {
	h.mu.RLock()
	targets := make([]domain.Channel, 0, len(h.clients))
	for _, ch := range h.clients {
		targets = append(targets, ch)
	}
	h.mu.RUnlock()

	for _, ch := range targets {
		if err := ch.Send(event, payload); err != nil {
			logrus.Warnf("broadcast %s to client %s dropped: %v", event, ch.ID(), err)
		}
	}
}

// Connected returns the number of connected channels.
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes every channel that supports it. Used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	targets := make([]domain.Channel, 0, len(h.clients))
	for _, ch := range h.clients {
		targets = append(targets, ch)
	}
	h.clients = make(map[string]domain.Channel)
	h.mu.Unlock()

	for _, ch := range targets {
		h.presence.Unregister(ch)
		if c, ok := ch.(interface{ Close() }); ok {
			c.Close()
		}
	}
}
