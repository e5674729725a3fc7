package model

import (
	"time"

	"github.com/ojlab/discussions/domain"
)

type Vote struct {
	ID           int64     `gorm:"column:vote_id;primaryKey;autoIncrement"`
	DiscussionID int64     `gorm:"column:discussion_id;not null;uniqueIndex:idx_discussion_identity"`
	IdentityID   int64     `gorm:"column:identity_id;not null;uniqueIndex:idx_discussion_identity"`
	VoteType     string    `gorm:"column:vote_type;type:varchar(10);not null"`
	CreatedAt    time.Time `gorm:"type:datetime"`

	Discussion Discussion `gorm:"foreignKey:DiscussionID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Vote) TableName() string {
	return "Problem_Discussion_Votes"
}

func NewVoteFromDomain(v *domain.Vote) *Vote {
	return &Vote{
		ID:           v.ID,
		DiscussionID: v.DiscussionID,
		IdentityID:   v.IdentityID,
		VoteType:     string(v.Type),
		CreatedAt:    v.CreatedAt,
	}
}

func (m *Vote) ToDomain() domain.Vote {
	return domain.Vote{
		ID:           m.ID,
		DiscussionID: m.DiscussionID,
		IdentityID:   m.IdentityID,
		Type:         domain.VoteType(m.VoteType),
		CreatedAt:    m.CreatedAt,
	}
}
