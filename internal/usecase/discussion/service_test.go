package discussion_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/ojlab/discussions/domain"
	"github.com/ojlab/discussions/domain/mocks"
	ucase "github.com/ojlab/discussions/internal/usecase/discussion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	discussions *mocks.DiscussionRepository
	replies     *mocks.ReplyRepository
	votes       *mocks.VoteRepository
	problems    *mocks.ProblemReader
	identities  *mocks.IdentityReader
	aggregator  *mocks.VoteAggregator
	authz       *mocks.Authorizer
}

func newService(t *testing.T) (domain.DiscussionUsecase, *serviceMocks) {
	t.Helper()
	m := &serviceMocks{
		discussions: new(mocks.DiscussionRepository),
		replies:     new(mocks.ReplyRepository),
		votes:       new(mocks.VoteRepository),
		problems:    new(mocks.ProblemReader),
		identities:  new(mocks.IdentityReader),
		aggregator:  new(mocks.VoteAggregator),
		authz:       new(mocks.Authorizer),
	}
	svc := ucase.NewService(
		m.discussions, m.replies, m.votes,
		m.problems, m.identities,
		m.aggregator, m.authz, nil,
	)
	return svc, m
}

var (
	owner      = domain.Identity{ID: 11, Username: "author"}
	stranger   = domain.Identity{ID: 22, Username: "stranger"}
	reviewer   = domain.Identity{ID: 33, Username: "reviewer", Roles: []string{"discussion-reviewer"}}
	sysAdmin   = domain.Identity{ID: 44, Username: "admin", Roles: []string{"admin"}}
	theProblem = domain.Problem{ID: 7, Alias: "sumas", Title: "Sumas"}
)

func TestList_ProblemNotFound(t *testing.T) {
	svc, m := newService(t)
	m.problems.On("GetByAlias", mock.Anything, "missing").Return(domain.Problem{}, domain.ErrNotFound)

	_, err := svc.List(context.Background(), "missing", domain.DiscussionListParams{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_NormalizesParams(t *testing.T) {
	svc, m := newService(t)
	m.problems.On("GetByAlias", mock.Anything, "sumas").Return(theProblem, nil)

	expected := domain.DiscussionListParams{
		Page:     1,
		PageSize: 20,
		SortBy:   "created_at",
		Order:    "DESC",
	}
	m.discussions.On("FetchByProblem", mock.Anything, theProblem.ID, expected).
		Return([]domain.Discussion{}, int64(0), nil)

	got, err := svc.List(context.Background(), "sumas", domain.DiscussionListParams{
		Page:     -3,
		PageSize: 0,
		SortBy:   "identity_id",
		Order:    "SIDEWAYS",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 20, got.PageSize)
	m.discussions.AssertExpectations(t)
}

func TestList_Enrichment(t *testing.T) {
	svc, m := newService(t)
	m.problems.On("GetByAlias", mock.Anything, "sumas").Return(theProblem, nil)

	rows := []domain.Discussion{
		{ID: 1, ProblemID: theProblem.ID, IdentityID: owner.ID},
		{ID: 2, ProblemID: theProblem.ID, IdentityID: 999},
	}
	m.discussions.On("FetchByProblem", mock.Anything, theProblem.ID, mock.Anything).
		Return(rows, int64(2), nil)
	m.identities.On("Username", mock.Anything, owner.ID).Return("author", nil)
	// identity lookup failures degrade to an empty username, never an error
	m.identities.On("Username", mock.Anything, int64(999)).Return("", domain.ErrNotFound)
	m.replies.On("CountByDiscussion", mock.Anything, int64(1)).Return(int64(3), nil)
	m.replies.On("CountByDiscussion", mock.Anything, int64(2)).Return(int64(0), nil)

	got, err := svc.List(context.Background(), "sumas", domain.DiscussionListParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, got.Discussions, 2)
	assert.Equal(t, "author", got.Discussions[0].Username)
	assert.Equal(t, int64(3), got.Discussions[0].ReplyCount)
	assert.Equal(t, "", got.Discussions[1].Username)
	assert.Equal(t, int64(2), got.Total)
}

func TestCreate(t *testing.T) {
	svc, m := newService(t)

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.Create(context.Background(), owner, "sumas", "   ")
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})

	t.Run("problem not found", func(t *testing.T) {
		m.problems.On("GetByAlias", mock.Anything, "missing").Return(domain.Problem{}, domain.ErrNotFound)
		_, err := svc.Create(context.Background(), owner, "missing", faker.Sentence())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		m.problems.On("GetByAlias", mock.Anything, "sumas").Return(theProblem, nil)
		m.discussions.On("Store", mock.Anything, mock.MatchedBy(func(d *domain.Discussion) bool {
			return d.ProblemID == theProblem.ID &&
				d.IdentityID == owner.ID &&
				d.Upvotes == 0 && d.Downvotes == 0
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Discussion).ID = 42
		}).Return(nil)

		id, err := svc.Create(context.Background(), owner, "sumas", faker.Sentence())
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})
}

func TestUpdate_Ownership(t *testing.T) {
	svc, m := newService(t)
	existing := domain.Discussion{ID: 5, IdentityID: owner.ID}
	m.discussions.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)

	t.Run("stranger forbidden", func(t *testing.T) {
		err := svc.Update(context.Background(), stranger, 5, faker.Sentence())
		assert.ErrorIs(t, err, domain.ErrForbiddenAccess)
	})

	t.Run("owner succeeds", func(t *testing.T) {
		m.discussions.On("UpdateContent", mock.Anything, int64(5), mock.Anything).Return(nil)
		err := svc.Update(context.Background(), owner, 5, faker.Sentence())
		assert.NoError(t, err)
	})
}

func TestDelete_Discussion(t *testing.T) {
	existing := domain.Discussion{ID: 5, IdentityID: owner.ID}

	cases := []struct {
		name     string
		actor    domain.Identity
		moderate bool
		wantErr  error
	}{
		{name: "owner", actor: owner, moderate: false},
		{name: "reviewer", actor: reviewer, moderate: true},
		{name: "admin", actor: sysAdmin, moderate: true},
		{name: "stranger", actor: stranger, moderate: false, wantErr: domain.ErrForbiddenAccess},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newService(t)
			m.discussions.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
			if tc.actor.ID != owner.ID {
				m.authz.On("CanModerate", tc.actor).Return(tc.moderate)
			}
			if tc.wantErr == nil {
				m.discussions.On("Delete", mock.Anything, int64(5)).Return(nil)
			}

			err := svc.Delete(context.Background(), tc.actor, 5, 0)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				m.discussions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				m.discussions.AssertExpectations(t)
			}
		})
	}
}

func TestDelete_Reply(t *testing.T) {
	reply := domain.Reply{ID: 9, DiscussionID: 5, IdentityID: owner.ID}

	t.Run("wrong discussion", func(t *testing.T) {
		svc, m := newService(t)
		m.replies.On("GetByID", mock.Anything, int64(9)).Return(reply, nil)

		err := svc.Delete(context.Background(), owner, 6, 9)
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	})

	t.Run("missing reply", func(t *testing.T) {
		svc, m := newService(t)
		m.replies.On("GetByID", mock.Anything, int64(404)).Return(domain.Reply{}, domain.ErrNotFound)

		err := svc.Delete(context.Background(), owner, 5, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		svc, m := newService(t)
		m.replies.On("GetByID", mock.Anything, int64(9)).Return(reply, nil)
		m.authz.On("CanModerate", stranger).Return(false)

		err := svc.Delete(context.Background(), stranger, 5, 9)
		assert.ErrorIs(t, err, domain.ErrForbiddenAccess)
	})

	t.Run("reviewer succeeds", func(t *testing.T) {
		svc, m := newService(t)
		m.replies.On("GetByID", mock.Anything, int64(9)).Return(reply, nil)
		m.authz.On("CanModerate", reviewer).Return(true)
		m.replies.On("Delete", mock.Anything, int64(9)).Return(nil)

		err := svc.Delete(context.Background(), reviewer, 5, 9)
		assert.NoError(t, err)
		m.replies.AssertExpectations(t)
	})
}

func TestVote(t *testing.T) {
	existing := domain.Discussion{ID: 5, IdentityID: owner.ID}

	t.Run("invalid type", func(t *testing.T) {
		svc, _ := newService(t)
		_, _, err := svc.Vote(context.Background(), stranger, 5, "sideways")
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	})

	t.Run("first vote inserts", func(t *testing.T) {
		svc, m := newService(t)
		m.discussions.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
		m.votes.On("GetByDiscussionAndIdentity", mock.Anything, int64(5), stranger.ID).
			Return(domain.Vote{}, domain.ErrNotFound)
		m.votes.On("Store", mock.Anything, mock.MatchedBy(func(v *domain.Vote) bool {
			return v.DiscussionID == 5 && v.IdentityID == stranger.ID && v.Type == domain.VoteUp
		})).Return(nil)
		m.aggregator.On("Recount", mock.Anything, int64(5)).Return(int64(1), int64(0), nil)

		up, down, err := svc.Vote(context.Background(), stranger, 5, domain.VoteUp)
		require.NoError(t, err)
		assert.Equal(t, int64(1), up)
		assert.Equal(t, int64(0), down)
	})

	t.Run("same type toggles off", func(t *testing.T) {
		svc, m := newService(t)
		m.discussions.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
		m.votes.On("GetByDiscussionAndIdentity", mock.Anything, int64(5), stranger.ID).
			Return(domain.Vote{ID: 1, DiscussionID: 5, IdentityID: stranger.ID, Type: domain.VoteUp}, nil)
		m.votes.On("DeleteByDiscussionAndIdentity", mock.Anything, int64(5), stranger.ID).Return(nil)
		m.aggregator.On("Recount", mock.Anything, int64(5)).Return(int64(0), int64(0), nil)

		up, down, err := svc.Vote(context.Background(), stranger, 5, domain.VoteUp)
		require.NoError(t, err)
		assert.Zero(t, up)
		assert.Zero(t, down)
		m.votes.AssertExpectations(t)
	})

	t.Run("opposite type flips in place", func(t *testing.T) {
		svc, m := newService(t)
		m.discussions.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
		m.votes.On("GetByDiscussionAndIdentity", mock.Anything, int64(5), stranger.ID).
			Return(domain.Vote{ID: 1, DiscussionID: 5, IdentityID: stranger.ID, Type: domain.VoteUp}, nil)
		m.votes.On("UpdateType", mock.Anything, int64(1), domain.VoteDown).Return(nil)
		m.aggregator.On("Recount", mock.Anything, int64(5)).Return(int64(0), int64(1), nil)

		up, down, err := svc.Vote(context.Background(), stranger, 5, domain.VoteDown)
		require.NoError(t, err)
		assert.Equal(t, int64(0), up)
		assert.Equal(t, int64(1), down)
		m.votes.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
		m.votes.AssertNotCalled(t, "DeleteByDiscussionAndIdentity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("discussion not found", func(t *testing.T) {
		svc, m := newService(t)
		m.discussions.On("GetByID", mock.Anything, int64(404)).Return(domain.Discussion{}, domain.ErrNotFound)

		_, _, err := svc.Vote(context.Background(), stranger, 404, domain.VoteUp)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListReplies_AnonymousMasked(t *testing.T) {
	svc, m := newService(t)
	m.discussions.On("GetByID", mock.Anything, int64(5)).Return(domain.Discussion{ID: 5}, nil)
	m.replies.On("FetchByDiscussion", mock.Anything, int64(5)).Return([]domain.Reply{
		{ID: 1, DiscussionID: 5, IdentityID: owner.ID},
		{ID: 2, DiscussionID: 5, IdentityID: stranger.ID, IsAnonymous: true},
	}, nil)
	m.identities.On("Username", mock.Anything, owner.ID).Return("author", nil)

	replies, err := svc.ListReplies(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "author", replies[0].Username)
	assert.Equal(t, "", replies[1].Username)
	m.identities.AssertNotCalled(t, "Username", mock.Anything, stranger.ID)
}

func TestCreateReply(t *testing.T) {
	svc, m := newService(t)

	t.Run("discussion not found", func(t *testing.T) {
		m.discussions.On("GetByID", mock.Anything, int64(404)).Return(domain.Discussion{}, domain.ErrNotFound)
		_, err := svc.CreateReply(context.Background(), stranger, 404, faker.Sentence(), false)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		m.discussions.On("GetByID", mock.Anything, int64(5)).Return(domain.Discussion{ID: 5}, nil)
		m.replies.On("Store", mock.Anything, mock.MatchedBy(func(r *domain.Reply) bool {
			return r.DiscussionID == 5 && r.IdentityID == stranger.ID && r.IsAnonymous
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Reply).ID = 77
		}).Return(nil)

		id, err := svc.CreateReply(context.Background(), stranger, 5, faker.Sentence(), true)
		require.NoError(t, err)
		assert.Equal(t, int64(77), id)
	})
}

func TestUpdateReply_AuthorOnly(t *testing.T) {
	svc, m := newService(t)
	reply := domain.Reply{ID: 9, DiscussionID: 5, IdentityID: owner.ID}
	m.replies.On("GetByID", mock.Anything, int64(9)).Return(reply, nil)

	// even moderators may not edit someone else's reply
	err := svc.UpdateReply(context.Background(), sysAdmin, 9, faker.Sentence())
	assert.ErrorIs(t, err, domain.ErrForbiddenAccess)

	m.replies.On("UpdateContent", mock.Anything, int64(9), mock.Anything).Return(nil)
	err = svc.UpdateReply(context.Background(), owner, 9, faker.Sentence())
	assert.NoError(t, err)
}
