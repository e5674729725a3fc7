package report

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
	reportRepo     domain.ReportRepository
	discussionRepo domain.DiscussionRepository
	replyRepo      domain.ReplyRepository
	problems       domain.ProblemReader
	identities     domain.IdentityReader
	authz          domain.Authorizer
}

var _ domain.ReportUsecase = (*service)(nil)

func NewService(
	reportRepo domain.ReportRepository,
	discussionRepo domain.DiscussionRepository,
	replyRepo domain.ReplyRepository,
	problems domain.ProblemReader,
	identities domain.IdentityReader,
	authz domain.Authorizer,
) *service {
	return &service{
		reportRepo:     reportRepo,
		discussionRepo: discussionRepo,
		replyRepo:      replyRepo,
		problems:       problems,
		identities:     identities,
		authz:          authz,
	}
}

func (s *service) Create(ctx context.Context, actor domain.Identity, discussionID int64, replyID *int64, reason string) (int64, error) {
	if strings.TrimSpace(reason) == "" {
		return 0, domain.ErrBadParamInput
	}

	if _, err := s.discussionRepo.GetByID(ctx, discussionID); err != nil {
		return 0, err
	}

	if replyID != nil {
		reply, err := s.replyRepo.GetByID(ctx, *replyID)
		if err != nil {
			return 0, err
		}
		if reply.DiscussionID != discussionID {
			return 0, domain.ErrInvalidParameter
		}
	}

	exists, err := s.reportRepo.Exists(ctx, discussionID, replyID, actor.ID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, domain.ErrDuplicatedEntry
	}

	report := domain.Report{
		DiscussionID: discussionID,
		ReplyID:      replyID,
		IdentityID:   actor.ID,
		Reason:       reason,
		Status:       domain.ReportOpen,
	}
	if err := s.reportRepo.Store(ctx, &report); err != nil {
		return 0, err
	}
	return report.ID, nil
}

// ListOpen builds the moderation queue. Reports whose discussion or reply was
// deleted between the count and the enrichment pass are silently omitted
// rather than errored on, so a page may hold fewer than pageSize rows.
func (s *service) ListOpen(ctx context.Context, actor domain.Identity, page, pageSize int) (domain.ReportPage, error) {
	if !s.authz.CanModerate(actor) {
		return domain.ReportPage{}, domain.ErrForbiddenAccess
	}

	if page < 1 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	reports, total, err := s.reportRepo.FetchOpen(ctx, page, pageSize)
	if err != nil {
		return domain.ReportPage{}, err
	}

	details := make([]domain.ReportDetail, 0, len(reports))
	for _, r := range reports {
		detail, ok, err := s.enrich(ctx, r)
		if err != nil {
			return domain.ReportPage{}, err
		}
		if !ok {
			logrus.Infof("skipping report %d: target no longer exists", r.ID)
			continue
		}
		details = append(details, detail)
	}

	return domain.ReportPage{
		Reports:  details,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// enrich resolves the report's target content and the involved usernames. The
// second return value is false when the target has since been deleted.
func (s *service) enrich(ctx context.Context, r domain.Report) (domain.ReportDetail, bool, error) {
	d, err := s.discussionRepo.GetByID(ctx, r.DiscussionID)
	if err == domain.ErrNotFound {
		return domain.ReportDetail{}, false, nil
	} else if err != nil {
		return domain.ReportDetail{}, false, err
	}

	detail := domain.ReportDetail{
		Report:            r,
		DiscussionContent: d.Content,
		ReporterUsername:  s.username(ctx, r.IdentityID),
	}

	if problem, err := s.problems.GetByID(ctx, d.ProblemID); err == nil {
		detail.ProblemAlias = problem.Alias
	}

	authorID := d.IdentityID
	if r.ReplyID != nil {
		reply, err := s.replyRepo.GetByID(ctx, *r.ReplyID)
		if err == domain.ErrNotFound {
			return domain.ReportDetail{}, false, nil
		} else if err != nil {
			return domain.ReportDetail{}, false, err
		}
		detail.ReplyContent = reply.Content
		authorID = reply.IdentityID
	}

	// Reviewers see the true author even for anonymous replies.
	detail.AuthorUsername = s.username(ctx, authorID)
	return detail, true, nil
}

func (s *service) username(ctx context.Context, identityID int64) string {
	name, err := s.identities.Username(ctx, identityID)
	if err != nil {
		return ""
	}
	return name
}

func (s *service) Resolve(ctx context.Context, actor domain.Identity, reportID int64, status domain.ReportStatus) error {
	if !s.authz.CanModerate(actor) {
		return domain.ErrForbiddenAccess
	}
	if !status.Terminal() {
		return domain.ErrInvalidParameter
	}

	r, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return err
	}

	// Re-requesting the current terminal status is an idempotent success.
	if r.Status == status {
		return nil
	}
	if r.Status != domain.ReportOpen {
		return domain.ErrInvalidParameter
	}

	return s.reportRepo.UpdateStatus(ctx, reportID, status)
}
