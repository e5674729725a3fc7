package mysql

import (
	"context"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/ojlab/discussions/domain"
	"github.com/ojlab/discussions/internal/repository/mysql/model"
	"gorm.io/gorm"
)

const duplicateEntryErrNo = 1062

type voteRepository struct {
	DB *gorm.DB
}

var _ domain.VoteRepository = (*voteRepository)(nil)

func NewVoteRepository(db *gorm.DB) *voteRepository {
	return &voteRepository{
		DB: db,
	}
}

func (r *voteRepository) GetByDiscussionAndIdentity(ctx context.Context, discussionID, identityID int64) (domain.Vote, error) {
	var vote model.Vote
	err := r.DB.WithContext(ctx).
		First(&vote, "discussion_id = ? AND identity_id = ?", discussionID, identityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Vote{}, domain.ErrNotFound
		}
		return domain.Vote{}, err
	}
	return vote.ToDomain(), nil
}

func (r *voteRepository) Store(ctx context.Context, v *domain.Vote) error {
	voteModel := model.NewVoteFromDomain(v)

	if err := r.DB.WithContext(ctx).Create(voteModel).Error; err != nil {
		if isDuplicateEntry(err) {
			return domain.ErrDuplicatedEntry
		}
		return err
	}

	v.ID = voteModel.ID
	v.CreatedAt = voteModel.CreatedAt
	return nil
}

func (r *voteRepository) UpdateType(ctx context.Context, id int64, voteType domain.VoteType) error {
	return r.DB.WithContext(ctx).
		Model(&model.Vote{}).
		Where("vote_id = ?", id).
		UpdateColumn("vote_type", string(voteType)).Error
}

func (r *voteRepository) DeleteByDiscussionAndIdentity(ctx context.Context, discussionID, identityID int64) error {
	return r.DB.WithContext(ctx).
		Delete(&model.Vote{}, "discussion_id = ? AND identity_id = ?", discussionID, identityID).Error
}

// CountByType aggregates both counters in a single statement so the pair is
// read from one consistent snapshot of the vote rows.
func (r *voteRepository) CountByType(ctx context.Context, discussionID int64) (int64, int64, error) {
	var counts struct {
		Upvotes   int64
		Downvotes int64
	}
	err := r.DB.WithContext(ctx).
		Model(&model.Vote{}).
		Select(
			"COALESCE(SUM(CASE WHEN vote_type = ? THEN 1 ELSE 0 END), 0) AS upvotes, "+
				"COALESCE(SUM(CASE WHEN vote_type = ? THEN 1 ELSE 0 END), 0) AS downvotes",
			string(domain.VoteUp), string(domain.VoteDown),
		).
		Where("discussion_id = ?", discussionID).
		Scan(&counts).Error
	if err != nil {
		return 0, 0, err
	}
	return counts.Upvotes, counts.Downvotes, nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntryErrNo
}
