package model

import (
	"time"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

// CommentReaction holds at most one row per (comment, user), so a user is
// never a liker and a disliker of the same comment at once.
type CommentReaction struct {
	CommentID int64     `gorm:"column:comment_id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	Kind      int8      `gorm:"column:kind;not null;comment:'1=like,-1=dislike'"`
	CreatedAt time.Time `gorm:"type:datetime(6)"`
}

func (CommentReaction) TableName() string {
	return "comment_reaction"
}

func NewCommentReaction(commentID, userID int64, kind domain.ReactionKind) CommentReaction {
	return CommentReaction{
		CommentID: commentID,
		UserID:    userID,
		Kind:      int8(kind),
	}
}

// ApplyReactions fills Likes and Dislikes of each comment from rows.
func ApplyReactions(comments []*domain.Comment, rows []CommentReaction) {
	byID := make(map[int64]*domain.Comment, len(comments))
	for _, c := range comments {
		if c.Likes == nil {
			c.Likes = []int64{}
		}
		if c.Dislikes == nil {
			c.Dislikes = []int64{}
		}
		byID[c.ID] = c
	}
	for _, r := range rows {
		c, ok := byID[r.CommentID]
		if !ok {
			continue
		}
		switch domain.ReactionKind(r.Kind) {
		case domain.ReactionLike:
			c.Likes = append(c.Likes, r.UserID)
		case domain.ReactionDislike:
			c.Dislikes = append(c.Dislikes, r.UserID)
		}
	}
}
