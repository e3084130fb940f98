package repository

import (
	"context"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"gorm.io/gorm"
)

type JobApplicationRepository struct {
	*baseRepository
}

func (jr JobApplicationRepository) Create(ctx context.Context, tx *gorm.DB, ja *model.JobApplication) (*model.JobApplication, error) {
	jr.logger.Debugf("Create job application for position: %s, email: %s", ja.Position, ja.Email)

	db := jr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.JobApplication{}).Omit("CareerListing").Create(ja).Error; err != nil {
		return ja, err
	}

	return ja, nil
}

func (jr JobApplicationRepository) List(ctx context.Context, tx *gorm.DB, page, pageSize uint) ([]model.JobApplication, int64, error) {
	jr.logger.Debugf("List job applications, page: %d, pageSize: %d", page, pageSize)

	return paginate[model.JobApplication](ctx, jr.getDB(tx), page, pageSize)
}
