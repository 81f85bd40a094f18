package model

import (
	"time"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(64);not null"`
	Username  string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Email     string    `gorm:"type:varchar(128);uniqueIndex"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Username:  m.Username,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Follow is one directed edge; follower and following sets are both read from it.
type Follow struct {
	FollowerID int64     `gorm:"column:follower_id;primaryKey"`
	FolloweeID int64     `gorm:"column:followee_id;primaryKey;index:idx_follow_followee_id"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Follow) TableName() string {
	return "follow"
}
