package domain

// Channel is a live delivery handle to one connected client.
type Channel interface {
	// ID is unique per connection for the lifetime of the process.
	ID() string
	// Send queues event for delivery without blocking.
	// It fails if the channel is closed or its queue is full.
	Send(event string, payload any) error
}

// PresenceRegistry tracks which user currently owns which channel.
type PresenceRegistry interface {
	// Register associates ch with userID, replacing any previous channel.
	Register(userID int64, ch Channel)
	// Unregister removes ch if it is still the channel on record for its user.
	Unregister(ch Channel)
	// Lookup returns the current channel of userID, or false if offline.
	Lookup(userID int64) (Channel, bool)
}

// Broadcaster delivers an unaddressed event to every connected channel.
type Broadcaster interface {
	EmitAll(event string, payload any)
}

// Wire event names.
const (
	WireNotification   = "notification"
	WireCommentCreated = "commentCreated"
	WireReplyCreated   = "replyCreated"
	WireLikeUpdated    = "likeUpdated"
	WireDislikeUpdated = "dislikeUpdated"
)
