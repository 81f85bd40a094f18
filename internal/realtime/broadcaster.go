package realtime

import (
	"context"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

// FeedBroadcaster keeps live feeds in sync by re-emitting comment events to everyone,
// the acting user's own channel included.
type FeedBroadcaster struct {
	out domain.Broadcaster
}

var _ domain.EventHandler = (*FeedBroadcaster)(nil)

func NewFeedBroadcaster(out domain.Broadcaster) *FeedBroadcaster {
	return &FeedBroadcaster{out: out}
}

// Events lists the event types the broadcaster subscribes to.
func (b *FeedBroadcaster) Events() []domain.EventType {
	return []domain.EventType{
		domain.EventCommentCreated,
		domain.EventReplyCreated,
		domain.EventLikeUpdated,
		domain.EventDislikeUpdated,
	}
}

func (b *FeedBroadcaster) Handle(_ context.Context, ev domain.Event) error {
	if ev.Comment == nil {
		return nil
	}
	switch ev.Type {
	case domain.EventCommentCreated:
		b.BroadcastNewComment(ev.Comment)
	case domain.EventReplyCreated:
		b.BroadcastNewReply(ev.Comment)
	case domain.EventLikeUpdated:
		b.out.EmitAll(domain.WireLikeUpdated, ev.Comment)
	case domain.EventDislikeUpdated:
		b.out.EmitAll(domain.WireDislikeUpdated, ev.Comment)
	}
	return nil
}

func (b *FeedBroadcaster) BroadcastNewComment(c *domain.Comment) {
	b.out.EmitAll(domain.WireCommentCreated, c)
}

func (b *FeedBroadcaster) BroadcastNewReply(c *domain.Comment) {
	b.out.EmitAll(domain.WireReplyCreated, c)
}
