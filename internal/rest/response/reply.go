package response

import "github.com/ojlab/discussions/domain"

type Reply struct {
	ReplyID        int64  `json:"reply_id"`
	DiscussionID   int64  `json:"discussion_id"`
	IdentityID     int64  `json:"identity_id"`
	Content        string `json:"content"`
	IsAnonymous    bool   `json:"is_anonymous"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
	Username       string `json:"username"`
	AuthorUsername string `json:"author_username"`
}

// NewReplyFromDomain: Domain -> Response
func NewReplyFromDomain(r *domain.Reply) Reply {
	return Reply{
		ReplyID:        r.ID,
		DiscussionID:   r.DiscussionID,
		IdentityID:     r.IdentityID,
		Content:        r.Content,
		IsAnonymous:    r.IsAnonymous,
		CreatedAt:      r.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:      r.UpdatedAt.Format(DateTimeFormat),
		Username:       r.Username,
		AuthorUsername: r.Username,
	}
}

type ReplyList struct {
	Replies []Reply `json:"replies"`
	Total   int     `json:"total"`
}

func NewReplyListFromDomain(replies []domain.Reply) ReplyList {
	res := make([]Reply, len(replies))
	for i := range replies {
		res[i] = NewReplyFromDomain(&replies[i])
	}
	return ReplyList{
		Replies: res,
		Total:   len(res),
	}
}
