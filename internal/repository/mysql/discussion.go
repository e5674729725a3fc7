package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ojlab/discussions/domain"
	"github.com/ojlab/discussions/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type discussionRepository struct {
	DB *gorm.DB
}

var _ domain.DiscussionRepository = (*discussionRepository)(nil)

func NewDiscussionRepository(db *gorm.DB) *discussionRepository {
	return &discussionRepository{
		DB: db,
	}
}

func (r *discussionRepository) GetByID(ctx context.Context, id int64) (domain.Discussion, error) {
	var discussion model.Discussion
	if err := r.DB.WithContext(ctx).First(&discussion, "discussion_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Discussion{}, domain.ErrNotFound
		}
		return domain.Discussion{}, err
	}
	return discussion.ToDomain(), nil
}

// sortColumns whitelists the ORDER BY targets; anything else falls back to
// created_at, same as the listing service.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"upvotes":    "upvotes",
	"downvotes":  "downvotes",
}

func (r *discussionRepository) FetchByProblem(ctx context.Context, problemID int64, params domain.DiscussionListParams) ([]domain.Discussion, int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).
		Model(&model.Discussion{}).
		Where("problem_id = ?", problemID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if params.Order == "ASC" {
		direction = "ASC"
	}

	var discussions []model.Discussion
	err = r.DB.WithContext(ctx).
		Where("problem_id = ?", problemID).
		Order(fmt.Sprintf("%s %s", column, direction)).
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&discussions).Error
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.Discussion, len(discussions))
	for i := range discussions {
		res[i] = discussions[i].ToDomain()
	}
	return res, total, nil
}

func (r *discussionRepository) Store(ctx context.Context, d *domain.Discussion) error {
	discussionModel := model.NewDiscussionFromDomain(d)

	if err := r.DB.WithContext(ctx).Create(discussionModel).Error; err != nil {
		return err
	}

	d.ID = discussionModel.ID
	d.CreatedAt = discussionModel.CreatedAt
	d.UpdatedAt = discussionModel.UpdatedAt
	return nil
}

func (r *discussionRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	return r.DB.WithContext(ctx).
		Model(&model.Discussion{}).
		Where("discussion_id = ?", id).
		Update("content", content).Error
}

// UpdateVoteCounts uses UpdateColumns so recounts never touch updated_at,
// which tracks content edits only.
func (r *discussionRepository) UpdateVoteCounts(ctx context.Context, id int64, upvotes, downvotes int64) error {
	return r.DB.WithContext(ctx).
		Model(&model.Discussion{}).
		Where("discussion_id = ?", id).
		UpdateColumns(map[string]interface{}{
			"upvotes":   upvotes,
			"downvotes": downvotes,
		}).Error
}

func (r *discussionRepository) Delete(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).
		Delete(&model.Discussion{}, "discussion_id = ?", id).Error
}
