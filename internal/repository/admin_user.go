package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"gorm.io/gorm"
)

type AdminUserRepository struct {
	*baseRepository
}

func (ar AdminUserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.AdminUser, error) {
	ar.logger.Debugf("Get admin user by email: %s", email)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.AdminUser
	if err := db.WithContext(ctx).Model(&model.AdminUser{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Take(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (ar AdminUserRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*model.AdminUser, error) {
	ar.logger.Debugf("Get admin user by id: %s", id)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.AdminUser
	if err := db.WithContext(ctx).Model(&model.AdminUser{}).Where("id = ?", id).Take(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateIfNotExists is used by the migrate command to seed the first admin.
func (ar AdminUserRepository) CreateIfNotExists(ctx context.Context, tx *gorm.DB, user *model.AdminUser) (bool, error) {
	ar.logger.Debugf("Create admin user if not exists: %s", user.Email)

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	db := ar.getDB(tx)
	created := false
	err := ar.withTx(db, func(tx *gorm.DB) error {
		existing, err := ar.GetByEmail(ctx, tx, user.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		if err := tx.WithContext(ctx).Model(&model.AdminUser{}).Create(user).Error; err != nil {
			return err
		}
		created = true
		return nil
	})

	return created, err
}
