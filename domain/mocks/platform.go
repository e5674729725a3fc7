package mocks

import (
	"context"

	"github.com/ojlab/discussions/domain"
	"github.com/stretchr/testify/mock"
)

// ProblemReader is a mock type for domain.ProblemReader
type ProblemReader struct {
	mock.Mock
}

func (m *ProblemReader) GetByAlias(ctx context.Context, alias string) (domain.Problem, error) {
	args := m.Called(ctx, alias)
	return args.Get(0).(domain.Problem), args.Error(1)
}

func (m *ProblemReader) GetByID(ctx context.Context, id int64) (domain.Problem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Problem), args.Error(1)
}

// IdentityReader is a mock type for domain.IdentityReader
type IdentityReader struct {
	mock.Mock
}

func (m *IdentityReader) Username(ctx context.Context, identityID int64) (string, error) {
	args := m.Called(ctx, identityID)
	return args.String(0), args.Error(1)
}

// Authorizer is a mock type for domain.Authorizer
type Authorizer struct {
	mock.Mock
}

func (m *Authorizer) CanModerate(identity domain.Identity) bool {
	args := m.Called(identity)
	return args.Bool(0)
}

// RecountScheduler is a mock type for domain.RecountScheduler
type RecountScheduler struct {
	mock.Mock
}

func (m *RecountScheduler) Schedule(discussionID int64) {
	m.Called(discussionID)
}

// IdentityCache is a mock type for domain.IdentityCache
type IdentityCache struct {
	mock.Mock
}

func (m *IdentityCache) GetUsername(ctx context.Context, identityID int64) (string, error) {
	args := m.Called(ctx, identityID)
	return args.String(0), args.Error(1)
}

func (m *IdentityCache) SetUsername(ctx context.Context, identityID int64, username string) error {
	args := m.Called(ctx, identityID, username)
	return args.Error(0)
}
