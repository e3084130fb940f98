package repository

import (
	"context"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"gorm.io/gorm"
)

type ContactSubmissionRepository struct {
	*baseRepository
}

func (cr ContactSubmissionRepository) Create(ctx context.Context, tx *gorm.DB, cs *model.ContactSubmission) (*model.ContactSubmission, error) {
	cr.logger.Debugf("Create contact submission from: %s", cs.Email)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.ContactSubmission{}).Create(cs).Error; err != nil {
		return cs, err
	}

	return cs, nil
}

func (cr ContactSubmissionRepository) List(ctx context.Context, tx *gorm.DB, page, pageSize uint) ([]model.ContactSubmission, int64, error) {
	cr.logger.Debugf("List contact submissions, page: %d, pageSize: %d", page, pageSize)

	return paginate[model.ContactSubmission](ctx, cr.getDB(tx), page, pageSize)
}
