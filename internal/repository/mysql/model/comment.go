package model

import (
	"time"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_comment_user_id"`
	Content   string    `gorm:"type:text;not null"`
	ParentID  *int64    `gorm:"column:parent_id;default:null;index:idx_comment_parent_id"`
	CreatedAt time.Time `gorm:"type:datetime(6);index:idx_comment_created_at"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		UserID:    c.AuthorID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		AuthorID:  m.UserID,
		Content:   m.Content,
		ParentID:  m.ParentID,
		CreatedAt: m.CreatedAt,
		Likes:     []int64{},
		Dislikes:  []int64{},
	}
}
