package model

import (
	"time"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

type Notification struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Type        string    `gorm:"type:varchar(16);not null"`
	RecipientID int64     `gorm:"column:recipient_id;not null;index:idx_notification_recipient,priority:1"`
	SenderID    int64     `gorm:"column:sender_id;not null"`
	CommentID   *int64    `gorm:"column:comment_id;default:null"`
	Message     string    `gorm:"type:varchar(255)"`
	IsRead      bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt   time.Time `gorm:"type:datetime(6);index:idx_notification_recipient,priority:2"`
}

func (Notification) TableName() string {
	return "notification"
}

func NewNotificationFromDomain(n *domain.Notification) *Notification {
	return &Notification{
		ID:          n.ID,
		Type:        string(n.Type),
		RecipientID: n.RecipientID,
		SenderID:    n.SenderID,
		CommentID:   n.CommentID,
		Message:     n.Message,
		IsRead:      n.Read,
		CreatedAt:   n.CreatedAt,
	}
}

func (m *Notification) ToDomain() domain.Notification {
	return domain.Notification{
		ID:          m.ID,
		Type:        domain.NotificationType(m.Type),
		RecipientID: m.RecipientID,
		SenderID:    m.SenderID,
		CommentID:   m.CommentID,
		Message:     m.Message,
		Read:        m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}
