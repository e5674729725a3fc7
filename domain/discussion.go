package domain

import (
	"context"
	"time"
)

// Discussion is representing a threaded comment posted on a problem.
type Discussion struct {
	ID         int64     // Unique identifier for the discussion
	ProblemID  int64     // Problem the discussion belongs to
	IdentityID int64     // Authoring identity
	Content    string    // Free-text body
	Upvotes    int64     // Denormalized counter, recomputed from vote rows
	Downvotes  int64     // Denormalized counter, recomputed from vote rows
	CreatedAt  time.Time // Creation timestamp
	UpdatedAt  time.Time // Last content update timestamp

	// Username 作者用户名，读取时填充
	Username string
	// ReplyCount 回复数，读取时填充
	ReplyCount int64
}

// DiscussionListParams carries pagination and sorting for discussion listings.
// Values outside the allowed sets fall back to defaults instead of erroring.
type DiscussionListParams struct {
	Page     int
	PageSize int
	SortBy   string // created_at | upvotes | downvotes
	Order    string // ASC | DESC
}

// DiscussionPage is one page of enriched discussions.
type DiscussionPage struct {
	Discussions []Discussion
	Total       int64
	Page        int
	PageSize    int
}

// DiscussionRepository defines the contract for discussion data persistence.
type DiscussionRepository interface {
	// GetByID retrieves a single discussion by its ID.
	// Returns ErrNotFound if the discussion doesn't exist.
	GetByID(ctx context.Context, id int64) (Discussion, error)

	// FetchByProblem retrieves one page of discussions for a problem plus the
	// total matching count. Params are assumed already normalized.
	FetchByProblem(ctx context.Context, problemID int64, params DiscussionListParams) ([]Discussion, int64, error)

	// Store creates a new discussion and backfills its ID.
	Store(ctx context.Context, d *Discussion) error

	// UpdateContent replaces the content and bumps the update timestamp.
	UpdateContent(ctx context.Context, id int64, content string) error

	// UpdateVoteCounts persists recomputed counters onto the discussion row.
	UpdateVoteCounts(ctx context.Context, id int64, upvotes, downvotes int64) error

	// Delete removes a discussion; the store cascades to replies, votes and
	// reports referencing it.
	Delete(ctx context.Context, id int64) error
}

// DiscussionUsecase 业务逻辑接口
type DiscussionUsecase interface {
	// List returns a page of discussions for the problem with the given alias,
	// enriched with author usernames and reply counts. Public.
	List(ctx context.Context, problemAlias string, params DiscussionListParams) (DiscussionPage, error)

	// Create posts a new discussion owned by the actor.
	Create(ctx context.Context, actor Identity, problemAlias, content string) (int64, error)

	// Update replaces the content; only the owning identity may update.
	Update(ctx context.Context, actor Identity, discussionID int64, content string) error

	// Delete removes a whole discussion, or a single reply when replyID is
	// non-zero. Allowed for the owner, a discussion-reviewer or an admin.
	Delete(ctx context.Context, actor Identity, discussionID, replyID int64) error

	// Vote casts an upvote or downvote with toggle semantics and returns the
	// freshly recomputed counters.
	Vote(ctx context.Context, actor Identity, discussionID int64, voteType VoteType) (upvotes, downvotes int64, err error)

	// ListReplies returns all replies of a discussion ordered by creation time
	// ascending, enriched with author usernames. Public.
	ListReplies(ctx context.Context, discussionID int64) ([]Reply, error)

	// CreateReply posts a reply owned by the actor.
	CreateReply(ctx context.Context, actor Identity, discussionID int64, content string, anonymous bool) (int64, error)

	// UpdateReply replaces a reply's content; author only.
	UpdateReply(ctx context.Context, actor Identity, replyID int64, content string) error
}
