package mocks

import (
	"context"

	"github.com/ojlab/discussions/domain"
	"github.com/stretchr/testify/mock"
)

// ReportRepository is a mock type for domain.ReportRepository
type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) GetByID(ctx context.Context, id int64) (domain.Report, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Report), args.Error(1)
}

func (m *ReportRepository) Exists(ctx context.Context, discussionID int64, replyID *int64, identityID int64) (bool, error) {
	args := m.Called(ctx, discussionID, replyID, identityID)
	return args.Bool(0), args.Error(1)
}

func (m *ReportRepository) Store(ctx context.Context, r *domain.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReportRepository) FetchOpen(ctx context.Context, page, pageSize int) ([]domain.Report, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Report), args.Get(1).(int64), args.Error(2)
}

func (m *ReportRepository) FetchByDiscussion(ctx context.Context, discussionID int64) ([]domain.Report, error) {
	args := m.Called(ctx, discussionID)
	return args.Get(0).([]domain.Report), args.Error(1)
}

func (m *ReportRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
