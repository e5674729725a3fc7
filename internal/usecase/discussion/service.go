package discussion

import (
	"context"
	"strings"

	"github.com/ojlab/discussions/domain"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type service struct {
	discussionRepo domain.DiscussionRepository
	replyRepo      domain.ReplyRepository
	voteRepo       domain.VoteRepository
	problems       domain.ProblemReader
	identities     domain.IdentityReader
	aggregator     domain.VoteAggregator
	authz          domain.Authorizer
	recounts       domain.RecountScheduler
}

var _ domain.DiscussionUsecase = (*service)(nil)

func NewService(
	discussionRepo domain.DiscussionRepository,
	replyRepo domain.ReplyRepository,
	voteRepo domain.VoteRepository,
	problems domain.ProblemReader,
	identities domain.IdentityReader,
	aggregator domain.VoteAggregator,
	authz domain.Authorizer,
	recounts domain.RecountScheduler,
) *service {
	return &service{
		discussionRepo: discussionRepo,
		replyRepo:      replyRepo,
		voteRepo:       voteRepo,
		problems:       problems,
		identities:     identities,
		aggregator:     aggregator,
		authz:          authz,
		recounts:       recounts,
	}
}

// normalizeListParams applies the listing defaults. Out-of-enum sort keys and
// orders fall back rather than erroring.
func normalizeListParams(params domain.DiscussionListParams) domain.DiscussionListParams {
	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.PageSize <= 0 {
		params.PageSize = DefaultPageSize
	}
	if params.PageSize > MaxPageSize {
		params.PageSize = MaxPageSize
	}
	switch params.SortBy {
	case "created_at", "upvotes", "downvotes":
	default:
		params.SortBy = "created_at"
	}
	switch strings.ToUpper(params.Order) {
	case "ASC":
		params.Order = "ASC"
	case "DESC":
		params.Order = "DESC"
	default:
		params.Order = "DESC"
	}
	return params
}

// username swallows lookup failures to an empty string; enrichment must not
// fail a read because an identity row went missing.
func (s *service) username(ctx context.Context, identityID int64) string {
	name, err := s.identities.Username(ctx, identityID)
	if err != nil {
		if err != domain.ErrNotFound {
			logrus.Warnf("username lookup failed for identity %d: %v", identityID, err)
		}
		return ""
	}
	return name
}

func (s *service) List(ctx context.Context, problemAlias string, params domain.DiscussionListParams) (domain.DiscussionPage, error) {
	problem, err := s.problems.GetByAlias(ctx, problemAlias)
	if err != nil {
		return domain.DiscussionPage{}, err
	}

	params = normalizeListParams(params)

	discussions, total, err := s.discussionRepo.FetchByProblem(ctx, problem.ID, params)
	if err != nil {
		return domain.DiscussionPage{}, err
	}

	for i := range discussions {
		discussions[i].Username = s.username(ctx, discussions[i].IdentityID)
		replyCount, err := s.replyRepo.CountByDiscussion(ctx, discussions[i].ID)
		if err != nil {
			return domain.DiscussionPage{}, err
		}
		discussions[i].ReplyCount = replyCount
	}

	return domain.DiscussionPage{
		Discussions: discussions,
		Total:       total,
		Page:        params.Page,
		PageSize:    params.PageSize,
	}, nil
}

func (s *service) Create(ctx context.Context, actor domain.Identity, problemAlias, content string) (int64, error) {
	if strings.TrimSpace(content) == "" {
		return 0, domain.ErrBadParamInput
	}

	problem, err := s.problems.GetByAlias(ctx, problemAlias)
	if err != nil {
		return 0, err
	}

	d := domain.Discussion{
		ProblemID:  problem.ID,
		IdentityID: actor.ID,
		Content:    content,
	}
	if err := s.discussionRepo.Store(ctx, &d); err != nil {
		return 0, err
	}
	return d.ID, nil
}

func (s *service) Update(ctx context.Context, actor domain.Identity, discussionID int64, content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrBadParamInput
	}

	d, err := s.discussionRepo.GetByID(ctx, discussionID)
	if err != nil {
		return err
	}
	if d.IdentityID != actor.ID {
		return domain.ErrForbiddenAccess
	}

	return s.discussionRepo.UpdateContent(ctx, discussionID, content)
}

// Delete removes a single reply when replyID is non-zero, otherwise the whole
// discussion. The store cascades reply deletes to the reply's reports and
// discussion deletes to all replies, votes and reports.
func (s *service) Delete(ctx context.Context, actor domain.Identity, discussionID, replyID int64) error {
	if replyID != 0 {
		reply, err := s.replyRepo.GetByID(ctx, replyID)
		if err != nil {
			return err
		}
		if reply.DiscussionID != discussionID {
			return domain.ErrInvalidParameter
		}
		if reply.IdentityID != actor.ID && !s.authz.CanModerate(actor) {
			return domain.ErrForbiddenAccess
		}
		return s.replyRepo.Delete(ctx, replyID)
	}

	d, err := s.discussionRepo.GetByID(ctx, discussionID)
	if err != nil {
		return err
	}
	if d.IdentityID != actor.ID && !s.authz.CanModerate(actor) {
		return domain.ErrForbiddenAccess
	}
	return s.discussionRepo.Delete(ctx, discussionID)
}

// Vote applies toggle semantics: first vote inserts, repeating the same type
// removes, the opposite type flips in place. Counters are then recomputed
// from the vote rows, never incremented.
func (s *service) Vote(ctx context.Context, actor domain.Identity, discussionID int64, voteType domain.VoteType) (int64, int64, error) {
	if !voteType.Valid() {
		return 0, 0, domain.ErrInvalidParameter
	}

	if _, err := s.discussionRepo.GetByID(ctx, discussionID); err != nil {
		return 0, 0, err
	}

	existing, err := s.voteRepo.GetByDiscussionAndIdentity(ctx, discussionID, actor.ID)
	switch {
	case err == domain.ErrNotFound:
		vote := domain.Vote{
			DiscussionID: discussionID,
			IdentityID:   actor.ID,
			Type:         voteType,
		}
		if err := s.voteRepo.Store(ctx, &vote); err != nil {
			return 0, 0, err
		}
	case err != nil:
		return 0, 0, err
	case existing.Type == voteType:
		if err := s.voteRepo.DeleteByDiscussionAndIdentity(ctx, discussionID, actor.ID); err != nil {
			return 0, 0, err
		}
	default:
		if err := s.voteRepo.UpdateType(ctx, existing.ID, voteType); err != nil {
			return 0, 0, err
		}
	}

	upvotes, downvotes, err := s.aggregator.Recount(ctx, discussionID)
	if err != nil {
		return 0, 0, err
	}
	if s.recounts != nil {
		s.recounts.Schedule(discussionID)
	}
	return upvotes, downvotes, nil
}

func (s *service) ListReplies(ctx context.Context, discussionID int64) ([]domain.Reply, error) {
	if _, err := s.discussionRepo.GetByID(ctx, discussionID); err != nil {
		return nil, err
	}

	replies, err := s.replyRepo.FetchByDiscussion(ctx, discussionID)
	if err != nil {
		return nil, err
	}

	for i := range replies {
		if replies[i].IsAnonymous {
			continue
		}
		replies[i].Username = s.username(ctx, replies[i].IdentityID)
	}
	return replies, nil
}

func (s *service) CreateReply(ctx context.Context, actor domain.Identity, discussionID int64, content string, anonymous bool) (int64, error) {
	if strings.TrimSpace(content) == "" {
		return 0, domain.ErrBadParamInput
	}

	if _, err := s.discussionRepo.GetByID(ctx, discussionID); err != nil {
		return 0, err
	}

	reply := domain.Reply{
		DiscussionID: discussionID,
		IdentityID:   actor.ID,
		Content:      content,
		IsAnonymous:  anonymous,
	}
	if err := s.replyRepo.Store(ctx, &reply); err != nil {
		return 0, err
	}
	return reply.ID, nil
}

func (s *service) UpdateReply(ctx context.Context, actor domain.Identity, replyID int64, content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrBadParamInput
	}

	reply, err := s.replyRepo.GetByID(ctx, replyID)
	if err != nil {
		return err
	}
	if reply.IdentityID != actor.ID {
		return domain.ErrForbiddenAccess
	}

	return s.replyRepo.UpdateContent(ctx, replyID, content)
}
