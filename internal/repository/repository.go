package repository

import (
	"context"
	"errors"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Postgres unique_violation
const uniqueViolationCode = "23505"

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB                  *gorm.DB
	ContactSubmission   *ContactSubmissionRepository
	ConsultationRequest *ConsultationRequestRepository
	JobApplication      *JobApplicationRepository
	Newsletter          *NewsletterRepository
	EmailTemplate       *EmailTemplateRepository
	CareerListing       *CareerListingRepository
	SiteSetting         *SiteSettingRepository
	AdminUser           *AdminUserRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger) *baseRepository {
	return &baseRepository{db: db, logger: logger}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger) *Repository {
	br := newBaseRepository(db, logger)

	return &Repository{
		DB:                  db,
		ContactSubmission:   &ContactSubmissionRepository{baseRepository: br},
		ConsultationRequest: &ConsultationRequestRepository{baseRepository: br},
		JobApplication:      &JobApplicationRepository{baseRepository: br},
		Newsletter:          &NewsletterRepository{baseRepository: br},
		EmailTemplate:       &EmailTemplateRepository{baseRepository: br},
		CareerListing:       &CareerListingRepository{baseRepository: br},
		SiteSetting:         &SiteSettingRepository{baseRepository: br},
		AdminUser:           &AdminUserRepository{baseRepository: br},
	}
}

// IsUniqueViolation reports whether err comes from a unique constraint.
// It understands both the raw driver error and gorm's translated one.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}

	return false
}

// Docs: https://gorm.io/docs/transactions.html
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx Transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}

// Newest first. page starts at 1.
func paginate[T any](ctx context.Context, db *gorm.DB, page, pageSize uint) ([]T, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var rows []T
	var total int64

	if page < 1 {
		page = 1
	}

	if err := db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return rows, total, err
	}

	if err := db.WithContext(ctx).Model(new(T)).
		Order("created_at desc").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&rows).Error; err != nil {
		return rows, total, err
	}

	return rows, total, nil
}
