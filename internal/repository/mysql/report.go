package mysql

import (
	"context"
	"errors"

	"github.com/ojlab/discussions/domain"
	"github.com/ojlab/discussions/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type reportRepository struct {
	DB *gorm.DB
}

var _ domain.ReportRepository = (*reportRepository)(nil)

func NewReportRepository(db *gorm.DB) *reportRepository {
	return &reportRepository{
		DB: db,
	}
}

func (r *reportRepository) GetByID(ctx context.Context, id int64) (domain.Report, error) {
	var report model.Report
	if err := r.DB.WithContext(ctx).First(&report, "report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Report{}, domain.ErrNotFound
		}
		return domain.Report{}, err
	}
	return report.ToDomain(), nil
}

func (r *reportRepository) Exists(ctx context.Context, discussionID int64, replyID *int64, identityID int64) (bool, error) {
	query := r.DB.WithContext(ctx).
		Model(&model.Report{}).
		Where("discussion_id = ? AND identity_id = ?", discussionID, identityID)
	if replyID == nil {
		query = query.Where("reply_id IS NULL")
	} else {
		query = query.Where("reply_id = ?", *replyID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reportRepository) Store(ctx context.Context, report *domain.Report) error {
	reportModel := model.NewReportFromDomain(report)

	if err := r.DB.WithContext(ctx).Create(reportModel).Error; err != nil {
		if isDuplicateEntry(err) {
			return domain.ErrDuplicatedEntry
		}
		return err
	}

	report.ID = reportModel.ID
	report.CreatedAt = reportModel.CreatedAt
	return nil
}

func (r *reportRepository) FetchOpen(ctx context.Context, page, pageSize int) ([]domain.Report, int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).
		Model(&model.Report{}).
		Where("status = ?", string(domain.ReportOpen)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var reports []model.Report
	err = r.DB.WithContext(ctx).
		Where("status = ?", string(domain.ReportOpen)).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.Report, len(reports))
	for i := range reports {
		res[i] = reports[i].ToDomain()
	}
	return res, total, nil
}

func (r *reportRepository) FetchByDiscussion(ctx context.Context, discussionID int64) ([]domain.Report, error) {
	var reports []model.Report
	err := r.DB.WithContext(ctx).
		Where("discussion_id = ?", discussionID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Report, len(reports))
	for i := range reports {
		res[i] = reports[i].ToDomain()
	}
	return res, nil
}

func (r *reportRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error {
	return r.DB.WithContext(ctx).
		Model(&model.Report{}).
		Where("report_id = ?", id).
		UpdateColumn("status", string(status)).Error
}
