package response

import "github.com/Guyuepp/go-realtime-comments/domain"

type Comment struct {
	ID        int64   `json:"id"`
	AuthorID  int64   `json:"author_id"`
	Content   string  `json:"content"`
	ParentID  *int64  `json:"parent_id"`
	CreatedAt string  `json:"created_at"`
	Likes     []int64 `json:"likes"`
	Dislikes  []int64 `json:"dislikes"`

	// Author 评论作者信息
	Author *User `json:"author,omitempty"`
	// Replies 子评论列表
	Replies []*Comment `json:"replies"`
}

func NewSingleCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	return &Comment{
		ID:        c.ID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		Likes:     nonNil(c.Likes),
		Dislikes:  nonNil(c.Dislikes),
		Author:    NewUserFromDomain(c.Author),
		Replies:   []*Comment{},
	}
}

// NewCommentFromDomain: Domain -> Response, with one level of replies
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	root := NewSingleCommentFromDomain(c)
	for _, r := range c.Replies {
		root.Replies = append(root.Replies, NewSingleCommentFromDomain(r))
	}
	return root
}

func NewCommentsFromDomain(cs []*domain.Comment) []*Comment {
	res := make([]*Comment, 0, len(cs))
	for _, c := range cs {
		res = append(res, NewCommentFromDomain(c))
	}
	return res
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
