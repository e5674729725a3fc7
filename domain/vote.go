package domain

import (
	"context"
	"time"
)

// VoteType is the direction of a vote on a discussion.
type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

// Valid reports whether the vote type is one of the two allowed values.
func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown
}

// Vote is representing one identity's vote on one discussion. At most one
// vote row exists per (discussion, identity) pair.
type Vote struct {
	ID           int64
	DiscussionID int64
	IdentityID   int64
	Type         VoteType
	CreatedAt    time.Time
}

// VoteRepository defines the contract for vote data persistence.
type VoteRepository interface {
	// GetByDiscussionAndIdentity returns ErrNotFound if the identity has no
	// vote on the discussion.
	GetByDiscussionAndIdentity(ctx context.Context, discussionID, identityID int64) (Vote, error)

	// Store creates a new vote row. Returns ErrDuplicatedEntry if the pair
	// already has one (lost insert race).
	Store(ctx context.Context, v *Vote) error

	// UpdateType flips an existing vote to the other direction in place.
	UpdateType(ctx context.Context, id int64, voteType VoteType) error

	// DeleteByDiscussionAndIdentity removes the identity's vote, if any.
	DeleteByDiscussionAndIdentity(ctx context.Context, discussionID, identityID int64) error

	// CountByType aggregates the live counts of both vote types from the vote
	// rows of a discussion.
	CountByType(ctx context.Context, discussionID int64) (upvotes, downvotes int64, err error)
}

// VoteAggregator recomputes a discussion's denormalized counters from the
// vote rows and persists them. Always a full recount, never an increment, so
// the counters cannot drift from the underlying rows.
type VoteAggregator interface {
	Recount(ctx context.Context, discussionID int64) (upvotes, downvotes int64, err error)
}

// RecountScheduler enqueues a discussion for a deferred re-run of the vote
// recount. Best effort; the synchronous recount after every vote mutation
// remains the primary enforcement of the counter invariant.
type RecountScheduler interface {
	Schedule(discussionID int64)
}
