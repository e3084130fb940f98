package repository

import (
	"context"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"gorm.io/gorm"
)

type NewsletterRepository struct {
	*baseRepository
}

// Create relies on the unique index on email. Callers check IsUniqueViolation
// instead of looking the address up first.
func (nr NewsletterRepository) Create(ctx context.Context, tx *gorm.DB, ns *model.NewsletterSubscription) (*model.NewsletterSubscription, error) {
	nr.logger.Debugf("Create newsletter subscription: %s", ns.Email)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.NewsletterSubscription{}).Create(ns).Error; err != nil {
		return ns, err
	}

	return ns, nil
}

func (nr NewsletterRepository) ListActiveEmails(ctx context.Context, tx *gorm.DB) ([]string, error) {
	nr.logger.Debug("List active newsletter emails")

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	emails := []string{}
	if err := db.WithContext(ctx).Model(&model.NewsletterSubscription{}).
		Where("is_active = ?", true).
		Order("created_at asc").
		Pluck("email", &emails).Error; err != nil {
		return emails, err
	}

	return emails, nil
}

func (nr NewsletterRepository) List(ctx context.Context, tx *gorm.DB, page, pageSize uint) ([]model.NewsletterSubscription, int64, error) {
	nr.logger.Debugf("List newsletter subscriptions, page: %d, pageSize: %d", page, pageSize)

	return paginate[model.NewsletterSubscription](ctx, nr.getDB(tx), page, pageSize)
}
