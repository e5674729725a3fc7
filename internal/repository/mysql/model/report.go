package model

import (
	"time"

	"github.com/ojlab/discussions/domain"
)

// Report rows carry a composite unique index over the full target. MySQL
// treats NULL reply_id values as distinct, so discussion-level duplicates are
// still caught by the service-layer existence check.
type Report struct {
	ID           int64     `gorm:"column:report_id;primaryKey;autoIncrement"`
	DiscussionID int64     `gorm:"column:discussion_id;not null;uniqueIndex:idx_report_target"`
	ReplyID      *int64    `gorm:"column:reply_id;uniqueIndex:idx_report_target"`
	IdentityID   int64     `gorm:"column:identity_id;not null;uniqueIndex:idx_report_target"`
	Reason       string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(10);not null;default:open;index"`
	CreatedAt    time.Time `gorm:"type:datetime"`

	Discussion Discussion `gorm:"foreignKey:DiscussionID;references:ID;constraint:OnDelete:CASCADE"`
	Reply      *Reply     `gorm:"foreignKey:ReplyID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Report) TableName() string {
	return "Problem_Discussion_Reports"
}

func NewReportFromDomain(r *domain.Report) *Report {
	return &Report{
		ID:           r.ID,
		DiscussionID: r.DiscussionID,
		ReplyID:      r.ReplyID,
		IdentityID:   r.IdentityID,
		Reason:       r.Reason,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
	}
}

func (m *Report) ToDomain() domain.Report {
	return domain.Report{
		ID:           m.ID,
		DiscussionID: m.DiscussionID,
		ReplyID:      m.ReplyID,
		IdentityID:   m.IdentityID,
		Reason:       m.Reason,
		Status:       domain.ReportStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}
