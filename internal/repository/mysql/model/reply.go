package model

import (
	"time"

	"github.com/ojlab/discussions/domain"
)

type Reply struct {
	ID           int64     `gorm:"column:reply_id;primaryKey;autoIncrement"`
	DiscussionID int64     `gorm:"column:discussion_id;not null;index"`
	IdentityID   int64     `gorm:"column:identity_id;not null;index"`
	IsAnonymous  bool      `gorm:"column:is_anonymous;default:false"`
	Content      string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"type:datetime"`
	UpdatedAt    time.Time `gorm:"type:datetime"`

	Discussion Discussion `gorm:"foreignKey:DiscussionID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Reply) TableName() string {
	return "Problem_Discussion_Replies"
}

func NewReplyFromDomain(r *domain.Reply) *Reply {
	return &Reply{
		ID:           r.ID,
		DiscussionID: r.DiscussionID,
		IdentityID:   r.IdentityID,
		IsAnonymous:  r.IsAnonymous,
		Content:      r.Content,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (m *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:           m.ID,
		DiscussionID: m.DiscussionID,
		IdentityID:   m.IdentityID,
		IsAnonymous:  m.IsAnonymous,
		Content:      m.Content,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
