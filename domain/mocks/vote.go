package mocks

import (
	"context"

	"github.com/ojlab/discussions/domain"
	"github.com/stretchr/testify/mock"
)

// VoteRepository is a mock type for domain.VoteRepository
type VoteRepository struct {
	mock.Mock
}

func (m *VoteRepository) GetByDiscussionAndIdentity(ctx context.Context, discussionID, identityID int64) (domain.Vote, error) {
	args := m.Called(ctx, discussionID, identityID)
	return args.Get(0).(domain.Vote), args.Error(1)
}

func (m *VoteRepository) Store(ctx context.Context, v *domain.Vote) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *VoteRepository) UpdateType(ctx context.Context, id int64, voteType domain.VoteType) error {
	args := m.Called(ctx, id, voteType)
	return args.Error(0)
}

func (m *VoteRepository) DeleteByDiscussionAndIdentity(ctx context.Context, discussionID, identityID int64) error {
	args := m.Called(ctx, discussionID, identityID)
	return args.Error(0)
}

func (m *VoteRepository) CountByType(ctx context.Context, discussionID int64) (int64, int64, error) {
	args := m.Called(ctx, discussionID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// VoteAggregator is a mock type for domain.VoteAggregator
type VoteAggregator struct {
	mock.Mock
}

func (m *VoteAggregator) Recount(ctx context.Context, discussionID int64) (int64, int64, error) {
	args := m.Called(ctx, discussionID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}
