package repository

import (
	"context"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"gorm.io/gorm"
)

type ConsultationRequestRepository struct {
	*baseRepository
}

func (cr ConsultationRequestRepository) Create(ctx context.Context, tx *gorm.DB, req *model.ConsultationRequest) (*model.ConsultationRequest, error) {
	cr.logger.Debugf("Create consultation request from: %s", req.Email)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.ConsultationRequest{}).Create(req).Error; err != nil {
		return req, err
	}

	return req, nil
}

func (cr ConsultationRequestRepository) List(ctx context.Context, tx *gorm.DB, page, pageSize uint) ([]model.ConsultationRequest, int64, error) {
	cr.logger.Debugf("List consultation requests, page: %d, pageSize: %d", page, pageSize)

	return paginate[model.ConsultationRequest](ctx, cr.getDB(tx), page, pageSize)
}
