package repository

import (
	"context"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"gorm.io/gorm"
)

type CareerListingRepository struct {
	*baseRepository
}

func (cr CareerListingRepository) ListActive(ctx context.Context, tx *gorm.DB) ([]model.CareerListing, error) {
	cr.logger.Debug("List active career listings")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	listings := []model.CareerListing{}
	if err := db.WithContext(ctx).Model(&model.CareerListing{}).
		Where("is_active = ?", true).
		Order("sort_order asc, created_at desc").
		Find(&listings).Error; err != nil {
		return listings, err
	}

	return listings, nil
}

func (cr CareerListingRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*model.CareerListing, error) {
	cr.logger.Debugf("Get career listing by id: %s", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var listing model.CareerListing
	if err := db.WithContext(ctx).Model(&model.CareerListing{}).
		Where("id = ? AND is_active = ?", id, true).
		Take(&listing).Error; err != nil {
		return nil, err
	}

	return &listing, nil
}
