package response

import "github.com/Guyuepp/go-realtime-comments/domain"

type Notification struct {
	ID        int64    `json:"id"`
	Type      string   `json:"type"`
	SenderID  int64    `json:"sender_id"`
	CommentID *int64   `json:"comment_id"`
	Message   string   `json:"message"`
	Read      bool     `json:"read"`
	CreatedAt string   `json:"created_at"`
	Sender    *User    `json:"sender,omitempty"`
	Comment   *Comment `json:"comment,omitempty"`
}

func NewNotificationFromDomain(n *domain.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Type:      string(n.Type),
		SenderID:  n.SenderID,
		CommentID: n.CommentID,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(DateTimeFormat),
		Sender:    NewUserFromDomain(n.Sender),
		Comment:   NewSingleCommentFromDomain(n.Comment),
	}
}

func NewNotificationsFromDomain(ns []domain.Notification) []Notification {
	res := make([]Notification, len(ns))
	for i := range ns {
		res[i] = NewNotificationFromDomain(&ns[i])
	}
	return res
}
