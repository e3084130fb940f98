package repository

import (
	"context"
	"errors"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"gorm.io/gorm"
)

type EmailTemplateRepository struct {
	*baseRepository
}

// GetActiveByType returns the first active template of the given type,
// gorm.ErrRecordNotFound when there is none.
func (er EmailTemplateRepository) GetActiveByType(ctx context.Context, tx *gorm.DB, templateType string) (*model.EmailTemplate, error) {
	er.logger.Debugf("Get active email template by type: %s", templateType)

	db := er.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var et model.EmailTemplate
	if err := db.WithContext(ctx).Model(&model.EmailTemplate{}).
		Where("template_type = ? AND is_active = ?", templateType, true).
		Order("updated_at desc").
		Take(&et).Error; err != nil {
		return nil, err
	}

	return &et, nil
}

func (er EmailTemplateRepository) List(ctx context.Context, tx *gorm.DB) ([]model.EmailTemplate, error) {
	er.logger.Debug("List email templates")

	db := er.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	templates := []model.EmailTemplate{}
	if err := db.WithContext(ctx).Model(&model.EmailTemplate{}).Order("template_type asc").Find(&templates).Error; err != nil {
		return templates, err
	}

	return templates, nil
}

// Upsert keeps a single row per template type. Activating a template
// deactivates every other row of the same type.
func (er EmailTemplateRepository) Upsert(ctx context.Context, tx *gorm.DB, et *model.EmailTemplate) (*model.EmailTemplate, error) {
	er.logger.Debugf("Upsert email template: %s, active: %t", et.TemplateType, et.IsActive)

	db := er.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := er.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		var existing model.EmailTemplate
		err := tx.Model(&model.EmailTemplate{}).Where("template_type = ?", et.TemplateType).Order("created_at asc").Take(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if existing.ID == "" {
			if err := tx.Create(et).Error; err != nil {
				return err
			}
		} else {
			et.ID = existing.ID
			if err := tx.Model(&existing).Select("name", "description", "subject", "html_content", "is_active").Updates(map[string]any{
				"name":         et.Name,
				"description":  et.Description,
				"subject":      et.Subject,
				"html_content": et.HTMLContent,
				"is_active":    et.IsActive,
			}).Error; err != nil {
				return err
			}
		}

		if et.IsActive {
			return tx.Model(&model.EmailTemplate{}).
				Where("template_type = ? AND id <> ?", et.TemplateType, et.ID).
				Update("is_active", false).Error
		}

		return nil
	})
	if err != nil {
		return et, err
	}

	return et, nil
}
