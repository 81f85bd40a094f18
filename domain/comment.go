package domain

import (
	"context"
	"time"
)

// Comment is a top-level comment when ParentID is nil, otherwise a reply.
type Comment struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Content   string    `json:"content"`
	ParentID  *int64    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	Likes     []int64   `json:"likes"`
	Dislikes  []int64   `json:"dislikes"`

	// Author 评论作者信息
	Author *User `json:"author,omitempty"`
	// Replies 直接子评论, 只展开一层
	Replies []*Comment `json:"replies,omitempty"`
}

// IsTopLevel reports whether the comment has no parent.
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, authorID int64, content string) (*Comment, error)
	Reply(ctx context.Context, authorID, parentID int64, content string) (*Comment, error)
	ToggleLike(ctx context.Context, commentID, userID int64) (*Comment, error)
	ToggleDislike(ctx context.Context, commentID, userID int64) (*Comment, error)
	Delete(ctx context.Context, commentID, requesterID int64) error
	ListTopLevel(ctx context.Context, cursor string, num int64) ([]*Comment, string, error)
	GetByID(ctx context.Context, id int64) (*Comment, error)
	InitBloomFilter(ctx context.Context) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// Store persists c and backfills ID and CreatedAt.
	Store(ctx context.Context, c *Comment) error

	// GetByID returns the comment with its reactions.
	// Returns ErrNotFound if the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// GetByIDs returns the plain comment rows for ids, without reactions.
	GetByIDs(ctx context.Context, ids []int64) ([]*Comment, error)

	// FetchRoots 获取一级评论, newest first
	FetchRoots(ctx context.Context, cursor string, limit int64) ([]*Comment, error)

	// FetchReplies 获取指定父评论ID列表的直接子回复 (with reactions)
	FetchReplies(ctx context.Context, parentIDs []int64) ([]*Comment, error)

	// ToggleReaction flips the reaction of userID on commentID atomically.
	// Returns ErrNotFound if the comment doesn't exist.
	ToggleReaction(ctx context.Context, commentID, userID int64, kind ReactionKind) (ReactionChange, error)

	// Delete removes the comment and every comment whose parent is id.
	// Returns the number of removed comments.
	Delete(ctx context.Context, id int64) (int64, error)

	// FetchIDs pages comment ids in ascending order, starting after cursor.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}
