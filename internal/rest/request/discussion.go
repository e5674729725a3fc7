package request

// CreateDiscussion is the body of POST /discussions.
type CreateDiscussion struct {
	ProblemAlias string `json:"problem_alias" binding:"required,problem_alias"`
	Content      string `json:"content" binding:"required"`
}

// UpdateDiscussion is the body of PUT /discussions/:id.
type UpdateDiscussion struct {
	Content string `json:"content" binding:"required"`
}

// Vote is the body of POST /discussions/:id/vote. The vote type enum is
// checked by the service so out-of-enum values surface as InvalidParameter.
type Vote struct {
	VoteType string `json:"vote_type" binding:"required"`
}
