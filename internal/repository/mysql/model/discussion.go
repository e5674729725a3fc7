package model

import (
	"time"

	"github.com/ojlab/discussions/domain"
)

type Discussion struct {
	ID         int64     `gorm:"column:discussion_id;primaryKey;autoIncrement"`
	ProblemID  int64     `gorm:"column:problem_id;not null;index"`
	IdentityID int64     `gorm:"column:identity_id;not null;index"`
	Content    string    `gorm:"type:text;not null"`
	Upvotes    int64     `gorm:"default:0"`
	Downvotes  int64     `gorm:"default:0"`
	CreatedAt  time.Time `gorm:"type:datetime"`
	UpdatedAt  time.Time `gorm:"type:datetime"`
}

func (Discussion) TableName() string {
	return "Problem_Discussions"
}

func NewDiscussionFromDomain(d *domain.Discussion) *Discussion {
	return &Discussion{
		ID:         d.ID,
		ProblemID:  d.ProblemID,
		IdentityID: d.IdentityID,
		Content:    d.Content,
		Upvotes:    d.Upvotes,
		Downvotes:  d.Downvotes,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (m *Discussion) ToDomain() domain.Discussion {
	return domain.Discussion{
		ID:         m.ID,
		ProblemID:  m.ProblemID,
		IdentityID: m.IdentityID,
		Content:    m.Content,
		Upvotes:    m.Upvotes,
		Downvotes:  m.Downvotes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
