package mocks

import (
	"context"

	"github.com/ojlab/discussions/domain"
	"github.com/stretchr/testify/mock"
)

// DiscussionRepository is a mock type for domain.DiscussionRepository
type DiscussionRepository struct {
	mock.Mock
}

func (m *DiscussionRepository) GetByID(ctx context.Context, id int64) (domain.Discussion, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Discussion), args.Error(1)
}

func (m *DiscussionRepository) FetchByProblem(ctx context.Context, problemID int64, params domain.DiscussionListParams) ([]domain.Discussion, int64, error) {
	args := m.Called(ctx, problemID, params)
	return args.Get(0).([]domain.Discussion), args.Get(1).(int64), args.Error(2)
}

func (m *DiscussionRepository) Store(ctx context.Context, d *domain.Discussion) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *DiscussionRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *DiscussionRepository) UpdateVoteCounts(ctx context.Context, id int64, upvotes, downvotes int64) error {
	args := m.Called(ctx, id, upvotes, downvotes)
	return args.Error(0)
}

func (m *DiscussionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ReplyRepository is a mock type for domain.ReplyRepository
type ReplyRepository struct {
	mock.Mock
}

func (m *ReplyRepository) GetByID(ctx context.Context, id int64) (domain.Reply, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Reply), args.Error(1)
}

func (m *ReplyRepository) FetchByDiscussion(ctx context.Context, discussionID int64) ([]domain.Reply, error) {
	args := m.Called(ctx, discussionID)
	return args.Get(0).([]domain.Reply), args.Error(1)
}

func (m *ReplyRepository) CountByDiscussion(ctx context.Context, discussionID int64) (int64, error) {
	args := m.Called(ctx, discussionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReplyRepository) Store(ctx context.Context, r *domain.Reply) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReplyRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *ReplyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
