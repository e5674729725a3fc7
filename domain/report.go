package domain

import (
	"context"
	"time"
)

// ReportStatus is the moderation state of a report. Transitions are only
// open→resolved and open→dismissed; both targets are terminal.
type ReportStatus string

const (
	ReportOpen      ReportStatus = "open"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

// Terminal reports whether the status accepts no further transition.
func (s ReportStatus) Terminal() bool {
	return s == ReportResolved || s == ReportDismissed
}

// Report is an abuse report against a discussion, or against one specific
// reply within it when ReplyID is set.
type Report struct {
	ID           int64
	DiscussionID int64
	ReplyID      *int64 // nil means the discussion itself is reported
	IdentityID   int64  // Reporter
	Reason       string
	Status       ReportStatus
	CreatedAt    time.Time
}

// ReportDetail is a report enriched for the moderation queue.
type ReportDetail struct {
	Report
	ProblemAlias      string
	DiscussionContent string
	ReplyContent      string // empty for discussion-level reports
	ReporterUsername  string
	AuthorUsername    string // reply author if a reply target, else discussion author
}

// ReportPage is one page of the moderation queue. It may hold fewer than
// PageSize entries even when more open reports exist: entries whose target
// was deleted after the count are skipped, not errored on.
type ReportPage struct {
	Reports  []ReportDetail
	Total    int64
	Page     int
	PageSize int
}

// ReportRepository defines the contract for report data persistence.
type ReportRepository interface {
	// GetByID returns ErrNotFound if the report doesn't exist.
	GetByID(ctx context.Context, id int64) (Report, error)

	// Exists reports whether the identity already reported the exact
	// (discussion, reply-or-nil) target.
	Exists(ctx context.Context, discussionID int64, replyID *int64, identityID int64) (bool, error)

	// Store creates a new report and backfills its ID. Returns
	// ErrDuplicatedEntry on a lost insert race for a reply-level target.
	Store(ctx context.Context, r *Report) error

	// FetchOpen returns one page of open reports, newest first, plus the
	// total open count.
	FetchOpen(ctx context.Context, page, pageSize int) ([]Report, int64, error)

	// FetchByDiscussion returns all reports against a discussion, newest first.
	FetchByDiscussion(ctx context.Context, discussionID int64) ([]Report, error)

	// UpdateStatus sets the moderation status.
	UpdateStatus(ctx context.Context, id int64, status ReportStatus) error
}

// ReportUsecase 业务逻辑接口
type ReportUsecase interface {
	// Create files a report by the actor against a discussion or one of its
	// replies. Returns ErrDuplicatedEntry if the actor already reported the
	// same target.
	Create(ctx context.Context, actor Identity, discussionID int64, replyID *int64, reason string) (int64, error)

	// ListOpen returns the moderation queue; reviewers and admins only.
	ListOpen(ctx context.Context, actor Identity, page, pageSize int) (ReportPage, error)

	// Resolve moves an open report to resolved or dismissed; reviewers and
	// admins only. Requesting the current status again is a no-op success.
	Resolve(ctx context.Context, actor Identity, reportID int64, status ReportStatus) error
}
