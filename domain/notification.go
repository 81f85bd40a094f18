package domain

import (
	"context"
	"time"
)

// NotificationType tags the event a notification was created for.
type NotificationType string

const (
	NotificationComment NotificationType = "comment"
	NotificationReply   NotificationType = "reply"
	NotificationLike    NotificationType = "like"
	NotificationDislike NotificationType = "dislike"
	NotificationFollow  NotificationType = "follow"
)

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationComment, NotificationReply, NotificationLike, NotificationDislike, NotificationFollow:
		return true
	default:
		return false
	}
}

// Notification is immutable once stored, except for Read.
type Notification struct {
	ID          int64            `json:"id"`
	Type        NotificationType `json:"type"`
	RecipientID int64            `json:"recipient_id"`
	SenderID    int64            `json:"sender_id"`
	CommentID   *int64           `json:"comment_id"`
	Message     string           `json:"message"`
	Read        bool             `json:"read"`
	CreatedAt   time.Time        `json:"created_at"`

	// Sender and Comment are populated for client consumption only.
	Sender  *User    `json:"sender,omitempty"`
	Comment *Comment `json:"comment,omitempty"`
}

// NotificationRepository defines the contract for notification persistence.
type NotificationRepository interface {
	// Store persists n and backfills ID and CreatedAt.
	Store(ctx context.Context, n *Notification) error

	// StoreBatch persists ns in one statement, keeping slice order as creation order.
	StoreBatch(ctx context.Context, ns []*Notification) error

	// GetByID returns ErrNotFound if the notification doesn't exist.
	GetByID(ctx context.Context, id int64) (Notification, error)

	// FetchByRecipient returns the recipient's notifications, newest first.
	FetchByRecipient(ctx context.Context, recipientID int64, unreadOnly bool) ([]Notification, error)

	// MarkRead returns ErrNotFound if the notification doesn't exist.
	MarkRead(ctx context.Context, id int64) error

	MarkAllRead(ctx context.Context, recipientID int64) error

	// Delete returns ErrNotFound if the notification doesn't exist.
	Delete(ctx context.Context, id int64) error

	DeleteByRecipient(ctx context.Context, recipientID int64) (int64, error)
}

// NotificationDispatcher persists a notification and pushes it to the recipient if online.
type NotificationDispatcher interface {
	Notify(ctx context.Context, n *Notification) error
}

// NotificationUsecase is the recipient-facing notification surface.
type NotificationUsecase interface {
	List(ctx context.Context, recipientID int64, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id, requesterID int64) (Notification, error)
	MarkAllRead(ctx context.Context, recipientID int64) error
	DeleteOne(ctx context.Context, id, requesterID int64) error
	DeleteAll(ctx context.Context, recipientID int64) (int64, error)
}
