package response

import "github.com/ojlab/discussions/domain"

type Discussion struct {
	DiscussionID   int64  `json:"discussion_id"`
	ProblemID      int64  `json:"problem_id"`
	IdentityID     int64  `json:"identity_id"`
	Content        string `json:"content"`
	Upvotes        int64  `json:"upvotes"`
	Downvotes      int64  `json:"downvotes"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
	Username       string `json:"username"`
	AuthorUsername string `json:"author_username"`
	ReplyCount     int64  `json:"reply_count"`
}

// NewDiscussionFromDomain: Domain -> Response
func NewDiscussionFromDomain(d *domain.Discussion) Discussion {
	return Discussion{
		DiscussionID:   d.ID,
		ProblemID:      d.ProblemID,
		IdentityID:     d.IdentityID,
		Content:        d.Content,
		Upvotes:        d.Upvotes,
		Downvotes:      d.Downvotes,
		CreatedAt:      d.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:      d.UpdatedAt.Format(DateTimeFormat),
		Username:       d.Username,
		AuthorUsername: d.Username,
		ReplyCount:     d.ReplyCount,
	}
}

type DiscussionList struct {
	Discussions []Discussion `json:"discussions"`
	Total       int64        `json:"total"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
}

func NewDiscussionListFromDomain(page domain.DiscussionPage) DiscussionList {
	discussions := make([]Discussion, len(page.Discussions))
	for i := range page.Discussions {
		discussions[i] = NewDiscussionFromDomain(&page.Discussions[i])
	}
	return DiscussionList{
		Discussions: discussions,
		Total:       page.Total,
		Page:        page.Page,
		PageSize:    page.PageSize,
	}
}
