package realtime

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

// Presence is the in-memory user -> channel index.
// It is rebuilt from nothing on restart; clients re-register on reconnect.
type Presence struct {
	mu     sync.RWMutex
	byUser map[int64]domain.Channel
	byChan map[string]int64
}

var _ domain.PresenceRegistry = (*Presence)(nil)

func NewPresence() *Presence {
	return &Presence{
		byUser: make(map[int64]domain.Channel),
		byChan: make(map[string]int64),
	}
}

func (p *Presence) Register(userID int64, ch domain.Channel) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// a channel belongs to at most one user
	if prevUser, ok := p.byChan[ch.ID()]; ok && prevUser != userID {
		if cur, ok := p.byUser[prevUser]; ok && cur.ID() == ch.ID() {
			delete(p.byUser, prevUser)
		}
	}
	if prev, ok := p.byUser[userID]; ok && prev.ID() != ch.ID() {
		delete(p.byChan, prev.ID())
	}

	p.byUser[userID] = ch
	p.byChan[ch.ID()] = userID
	logrus.Debugf("user %d registered on channel %s", userID, ch.ID())
}

func (p *Presence) Unregister(ch domain.Channel) {
	p.mu.Lock()
	defer p.mu.Unlock()

	userID, ok := p.byChan[ch.ID()]
	if !ok {
		return
	}
	delete(p.byChan, ch.ID())
	if cur, ok := p.byUser[userID]; ok && cur.ID() == ch.ID() {
		delete(p.byUser, userID)
		logrus.Debugf("user %d unregistered from channel %s", userID, ch.ID())
	}
}

func (p *Presence) Lookup(userID int64) (domain.Channel, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ch, ok := p.byUser[userID]
	return ch, ok
}

// Online returns the number of registered users.
func (p *Presence) Online() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.byUser)
}
