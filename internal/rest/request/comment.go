package request

// Comment is the body of POST /comments and POST /comments/:id/reply.
type Comment struct {
	Content string `json:"content" binding:"required,max=2000"`
}
