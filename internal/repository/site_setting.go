package repository

import (
	"context"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"gorm.io/gorm"
)

type SiteSettingRepository struct {
	*baseRepository
}

func (sr SiteSettingRepository) GetAll(ctx context.Context, tx *gorm.DB) (map[string]string, error) {
	sr.logger.Debug("Get all site settings")

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var rows []model.SiteSetting
	settings := map[string]string{}
	if err := db.WithContext(ctx).Model(&model.SiteSetting{}).Find(&rows).Error; err != nil {
		return settings, err
	}

	for _, row := range rows {
		settings[row.Key] = row.Value
	}

	return settings, nil
}
