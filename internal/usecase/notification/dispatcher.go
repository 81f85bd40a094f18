package notification

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

const fanOutPage = 500

// Messages stored with each notification type.
const (
	MessageComment = "added a new comment"
	MessageReply   = "replied to your comment"
	MessageLike    = "liked your comment"
	MessageDislike = "disliked your comment"
	MessageFollow  = "started following you"
)

// Dispatcher turns domain events into notification records and pushes each
// record to its recipient when the recipient is online.
type Dispatcher struct {
	notifRepo domain.NotificationRepository
	userRepo  domain.UserRepository
	presence  domain.PresenceRegistry
}

var (
	_ domain.NotificationDispatcher = (*Dispatcher)(nil)
	_ domain.EventHandler           = (*Dispatcher)(nil)
)

func NewDispatcher(n domain.NotificationRepository, u domain.UserRepository, p domain.PresenceRegistry) *Dispatcher {
	return &Dispatcher{
		notifRepo: n,
		userRepo:  u,
		presence:  p,
	}
}

// Events lists the event types the dispatcher subscribes to.
func (d *Dispatcher) Events() []domain.EventType {
	return []domain.EventType{
		domain.EventCommentCreated,
		domain.EventReplyCreated,
		domain.EventCommentLiked,
		domain.EventCommentDisliked,
		domain.EventUserFollowed,
	}
}

// Notify persists n whether or not the recipient is online, then tries a live push.
// Push failures are logged and never returned.
func (d *Dispatcher) Notify(ctx context.Context, n *domain.Notification) error {
	if !n.Type.Valid() {
		return domain.ErrBadParamInput
	}
	if err := d.notifRepo.Store(ctx, n); err != nil {
		return err
	}
	d.push(ctx, n, nil)
	return nil
}

func (d *Dispatcher) Handle(ctx context.Context, ev domain.Event) error {
	switch ev.Type {
	case domain.EventCommentCreated:
		return d.fanOutComment(ctx, ev)
	case domain.EventReplyCreated:
		return d.notifyRecipient(ctx, ev, domain.NotificationReply, MessageReply)
	case domain.EventCommentLiked:
		return d.notifyRecipient(ctx, ev, domain.NotificationLike, MessageLike)
	case domain.EventCommentDisliked:
		return d.notifyRecipient(ctx, ev, domain.NotificationDislike, MessageDislike)
	case domain.EventUserFollowed:
		return d.notifyRecipient(ctx, ev, domain.NotificationFollow, MessageFollow)
	}
	return nil
}

func (d *Dispatcher) notifyRecipient(ctx context.Context, ev domain.Event, typ domain.NotificationType, msg string) error {
	if ev.RecipientID == 0 || ev.RecipientID == ev.ActorID {
		return nil
	}
	return d.Notify(ctx, newNotification(typ, ev.RecipientID, ev, msg))
}

// fanOutComment notifies every user except the author, one page of recipients per batch insert.
func (d *Dispatcher) fanOutComment(ctx context.Context, ev domain.Event) error {
	if ev.Comment == nil {
		return nil
	}

	var cursor int64
	sender := ev.Comment.Author
	for {
		ids, err := d.userRepo.FetchIDs(ctx, cursor, fanOutPage)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		batch := make([]*domain.Notification, 0, len(ids))
		for _, id := range ids {
			if id == ev.ActorID {
				continue
			}
			batch = append(batch, newNotification(domain.NotificationComment, id, ev, MessageComment))
		}
		if err := d.notifRepo.StoreBatch(ctx, batch); err != nil {
			return err
		}
		for _, n := range batch {
			d.push(ctx, n, sender)
		}

		cursor = ids[len(ids)-1]
		if len(ids) < fanOutPage {
			return nil
		}
	}
}

// push sends n to the recipient's live channel, resolving the sender when not given.
func (d *Dispatcher) push(ctx context.Context, n *domain.Notification, sender *domain.User) {
	ch, ok := d.presence.Lookup(n.RecipientID)
	if !ok {
		return
	}

	if sender == nil {
		u, err := d.userRepo.GetByID(ctx, n.SenderID)
		if err != nil {
			logrus.Warnf("failed to resolve sender %d of notification %d: %v", n.SenderID, n.ID, err)
		} else {
			sender = &u
		}
	}
	payload := *n
	payload.Sender = sender

	if err := ch.Send(domain.WireNotification, payload); err != nil {
		logrus.Warnf("failed to push notification %d to user %d: %v", n.ID, n.RecipientID, err)
	}
}

func newNotification(typ domain.NotificationType, recipientID int64, ev domain.Event, msg string) *domain.Notification {
	n := &domain.Notification{
		Type:        typ,
		RecipientID: recipientID,
		SenderID:    ev.ActorID,
		Message:     msg,
	}
	if ev.Comment != nil {
		id := ev.Comment.ID
		n.CommentID = &id
	}
	return n
}
