package domain

import (
	"context"
	"time"
)

// Reply domain model
type Reply struct {
	ID           int64     `json:"reply_id"`
	DiscussionID int64     `json:"discussion_id"`
	IdentityID   int64     `json:"identity_id"`
	Content      string    `json:"content"`
	IsAnonymous  bool      `json:"is_anonymous"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Username 作者用户名，读取时填充；匿名回复对外为空串
	Username string `json:"username"`
}

// ReplyRepository 数据存取接口
type ReplyRepository interface {
	// GetByID returns ErrNotFound if the reply doesn't exist.
	GetByID(ctx context.Context, id int64) (Reply, error)

	// FetchByDiscussion returns all replies of a discussion, created_at ASC.
	FetchByDiscussion(ctx context.Context, discussionID int64) ([]Reply, error)

	// CountByDiscussion returns the live reply count for a discussion.
	CountByDiscussion(ctx context.Context, discussionID int64) (int64, error)

	// Store creates a new reply and backfills its ID.
	Store(ctx context.Context, r *Reply) error

	// UpdateContent replaces the content and bumps the update timestamp.
	UpdateContent(ctx context.Context, id int64, content string) error

	// Delete removes a reply; the store cascades to reports referencing it.
	Delete(ctx context.Context, id int64) error
}
