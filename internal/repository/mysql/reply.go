package mysql

import (
	"context"
	"errors"

	"github.com/ojlab/discussions/domain"
	"github.com/ojlab/discussions/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type replyRepository struct {
	DB *gorm.DB
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB) *replyRepository {
	return &replyRepository{
		DB: db,
	}
}

func (r *replyRepository) GetByID(ctx context.Context, id int64) (domain.Reply, error) {
	var reply model.Reply
	if err := r.DB.WithContext(ctx).First(&reply, "reply_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Reply{}, domain.ErrNotFound
		}
		return domain.Reply{}, err
	}
	return reply.ToDomain(), nil
}

func (r *replyRepository) FetchByDiscussion(ctx context.Context, discussionID int64) ([]domain.Reply, error) {
	var replies []model.Reply
	err := r.DB.WithContext(ctx).
		Where("discussion_id = ?", discussionID).
		Order("created_at ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Reply, len(replies))
	for i := range replies {
		res[i] = replies[i].ToDomain()
	}
	return res, nil
}

func (r *replyRepository) CountByDiscussion(ctx context.Context, discussionID int64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("discussion_id = ?", discussionID).
		Count(&count).Error
	return count, err
}

func (r *replyRepository) Store(ctx context.Context, reply *domain.Reply) error {
	replyModel := model.NewReplyFromDomain(reply)

	if err := r.DB.WithContext(ctx).Create(replyModel).Error; err != nil {
		return err
	}

	reply.ID = replyModel.ID
	reply.CreatedAt = replyModel.CreatedAt
	reply.UpdatedAt = replyModel.UpdatedAt
	return nil
}

func (r *replyRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	return r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("reply_id = ?", id).
		Update("content", content).Error
}

func (r *replyRepository) Delete(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).
		Delete(&model.Reply{}, "reply_id = ?", id).Error
}
