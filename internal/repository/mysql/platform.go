package mysql

import (
	"context"
	"errors"

	"github.com/ojlab/discussions/domain"
	"github.com/ojlab/discussions/internal/repository/mysql/model"
	"gorm.io/gorm"
)

// problemReader and identityReader expose read-only lookups against the
// platform-owned Problems and Identities tables.

type problemReader struct {
	DB *gorm.DB
}

var _ domain.ProblemReader = (*problemReader)(nil)

func NewProblemReader(db *gorm.DB) *problemReader {
	return &problemReader{
		DB: db,
	}
}

func (r *problemReader) GetByAlias(ctx context.Context, alias string) (domain.Problem, error) {
	var problem model.Problem
	if err := r.DB.WithContext(ctx).First(&problem, "alias = ?", alias).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Problem{}, domain.ErrNotFound
		}
		return domain.Problem{}, err
	}
	return problem.ToDomain(), nil
}

func (r *problemReader) GetByID(ctx context.Context, id int64) (domain.Problem, error) {
	var problem model.Problem
	if err := r.DB.WithContext(ctx).First(&problem, "problem_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Problem{}, domain.ErrNotFound
		}
		return domain.Problem{}, err
	}
	return problem.ToDomain(), nil
}

type identityReader struct {
	DB *gorm.DB
}

var _ domain.IdentityReader = (*identityReader)(nil)

func NewIdentityReader(db *gorm.DB) *identityReader {
	return &identityReader{
		DB: db,
	}
}

func (r *identityReader) Username(ctx context.Context, identityID int64) (string, error) {
	var identity model.Identity
	if err := r.DB.WithContext(ctx).First(&identity, "identity_id = ?", identityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return identity.Username, nil
}
