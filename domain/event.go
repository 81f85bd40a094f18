package domain

import (
	"context"
	"time"
)

// EventType names a domain event emitted by the comment and user logic.
type EventType string

const (
	EventCommentCreated  EventType = "commentCreated"
	EventReplyCreated    EventType = "replyCreated"
	EventLikeUpdated     EventType = "likeUpdated"
	EventDislikeUpdated  EventType = "dislikeUpdated"
	EventCommentLiked    EventType = "commentLiked"
	EventCommentDisliked EventType = "commentDisliked"
	EventUserFollowed    EventType = "userFollowed"
)

// Event is a single record with a type tag; fields unused by a type stay zero.
type Event struct {
	Type    EventType
	ActorID int64
	// RecipientID is the parent author for replies, the comment author for
	// reactions and the followee for follows.
	RecipientID int64
	Comment     *Comment
	OccurredAt  time.Time
}

// EventHandler consumes domain events.
type EventHandler interface {
	Handle(ctx context.Context, ev Event) error
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ctx context.Context, ev Event) error

func (f EventHandlerFunc) Handle(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// EventPublisher is the emission boundary between business logic and delivery.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}
