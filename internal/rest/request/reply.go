package request

// CreateReply is the body of POST /discussions/:id/replies.
type CreateReply struct {
	Content     string `json:"content" binding:"required"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// UpdateReply is the body of PUT /replies/:id.
type UpdateReply struct {
	Content string `json:"content" binding:"required"`
}
