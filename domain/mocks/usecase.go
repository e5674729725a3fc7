package mocks

import (
	"context"

	"github.com/ojlab/discussions/domain"
	"github.com/stretchr/testify/mock"
)

// DiscussionUsecase is a mock type for domain.DiscussionUsecase
type DiscussionUsecase struct {
	mock.Mock
}

func (m *DiscussionUsecase) List(ctx context.Context, problemAlias string, params domain.DiscussionListParams) (domain.DiscussionPage, error) {
	args := m.Called(ctx, problemAlias, params)
	return args.Get(0).(domain.DiscussionPage), args.Error(1)
}

func (m *DiscussionUsecase) Create(ctx context.Context, actor domain.Identity, problemAlias, content string) (int64, error) {
	args := m.Called(ctx, actor, problemAlias, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DiscussionUsecase) Update(ctx context.Context, actor domain.Identity, discussionID int64, content string) error {
	args := m.Called(ctx, actor, discussionID, content)
	return args.Error(0)
}

func (m *DiscussionUsecase) Delete(ctx context.Context, actor domain.Identity, discussionID, replyID int64) error {
	args := m.Called(ctx, actor, discussionID, replyID)
	return args.Error(0)
}

func (m *DiscussionUsecase) Vote(ctx context.Context, actor domain.Identity, discussionID int64, voteType domain.VoteType) (int64, int64, error) {
	args := m.Called(ctx, actor, discussionID, voteType)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *DiscussionUsecase) ListReplies(ctx context.Context, discussionID int64) ([]domain.Reply, error) {
	args := m.Called(ctx, discussionID)
	return args.Get(0).([]domain.Reply), args.Error(1)
}

func (m *DiscussionUsecase) CreateReply(ctx context.Context, actor domain.Identity, discussionID int64, content string, anonymous bool) (int64, error) {
	args := m.Called(ctx, actor, discussionID, content, anonymous)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DiscussionUsecase) UpdateReply(ctx context.Context, actor domain.Identity, replyID int64, content string) error {
	args := m.Called(ctx, actor, replyID, content)
	return args.Error(0)
}

// ReportUsecase is a mock type for domain.ReportUsecase
type ReportUsecase struct {
	mock.Mock
}

func (m *ReportUsecase) Create(ctx context.Context, actor domain.Identity, discussionID int64, replyID *int64, reason string) (int64, error) {
	args := m.Called(ctx, actor, discussionID, replyID, reason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportUsecase) ListOpen(ctx context.Context, actor domain.Identity, page, pageSize int) (domain.ReportPage, error) {
	args := m.Called(ctx, actor, page, pageSize)
	return args.Get(0).(domain.ReportPage), args.Error(1)
}

func (m *ReportUsecase) Resolve(ctx context.Context, actor domain.Identity, reportID int64, status domain.ReportStatus) error {
	args := m.Called(ctx, actor, reportID, status)
	return args.Error(0)
}
