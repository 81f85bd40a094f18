// Package events is the in-process emission boundary between the comment/user
// logic and the notification and broadcast subscribers.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

type subscription struct {
	name    string
	types   map[domain.EventType]struct{}
	handler domain.EventHandler
}

// Bus runs subscribers synchronously, in subscription order.
// All matching subscribers run even if an earlier one fails.
type Bus struct {
	mu   sync.RWMutex
	subs []subscription
}

var _ domain.EventPublisher = (*Bus)(nil)

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for the given event types; no types means every event.
func (b *Bus) Subscribe(name string, h domain.EventHandler, types ...domain.EventType) {
	set := make(map[domain.EventType]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	b.mu.Lock()
	b.subs = append(b.subs, subscription{name: name, types: set, handler: h})
	b.mu.Unlock()
}

func (b *Bus) Publish(ctx context.Context, ev domain.Event) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	var errs []error
	for _, s := range subs {
		if len(s.types) > 0 {
			if _, ok := s.types[ev.Type]; !ok {
				continue
			}
		}
		if err := s.handler.Handle(ctx, ev); err != nil {
			errs = append(errs, fmt.Errorf("%s handling %s: %w", s.name, ev.Type, err))
		}
	}
	return errors.Join(errs...)
}
