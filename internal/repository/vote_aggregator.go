package repository

import (
	"context"

	"github.com/ojlab/discussions/domain"
)

// voteAggregator recomputes both counters from the vote rows and persists
// them onto the discussion row. Full recount rather than increment: a vote
// change or removal can never leave the counters drifted from the rows.
type voteAggregator struct {
	votes       domain.VoteRepository
	discussions domain.DiscussionRepository
}

var _ domain.VoteAggregator = (*voteAggregator)(nil)

func NewVoteAggregator(votes domain.VoteRepository, discussions domain.DiscussionRepository) *voteAggregator {
	return &voteAggregator{
		votes:       votes,
		discussions: discussions,
	}
}

func (a *voteAggregator) Recount(ctx context.Context, discussionID int64) (int64, int64, error) {
	upvotes, downvotes, err := a.votes.CountByType(ctx, discussionID)
	if err != nil {
		return 0, 0, err
	}
	if err := a.discussions.UpdateVoteCounts(ctx, discussionID, upvotes, downvotes); err != nil {
		return 0, 0, err
	}
	return upvotes, downvotes, nil
}
