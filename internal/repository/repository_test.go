package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewRepository(gdb, zap.NewNop().Sugar()), mock
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "pg unique violation", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "wrapped pg unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), want: true},
		{name: "pg not null violation", err: &pgconn.PgError{Code: "23502"}, want: false},
		{name: "plain error", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestContactSubmissionCreate(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "contact_submissions"`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	row := &model.ContactSubmission{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Message:  "Hello",
		Services: pq.StringArray{"AI & Machine Learning"},
		Status:   constant.SubmissionStatusNew,
	}

	created, err := repo.ContactSubmission.Create(context.Background(), nil, row)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, constant.SubmissionStatusNew, created.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsletterCreateDuplicate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "newsletter_subscriptions"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "idx_newsletter_subscriptions_email"`})

	_, err := repo.Newsletter.Create(context.Background(), nil, &model.NewsletterSubscription{
		Email:    "a@b.com",
		Source:   constant.NewsletterSourceWebsite,
		IsActive: true,
		Status:   constant.SubmissionStatusNew,
	})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailTemplateGetActiveByType(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT \* FROM "email_templates" WHERE template_type = \$1 AND is_active = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "template_type", "subject", "html_content", "is_active"}).
				AddRow("tpl-1", "contact_notification", "Lead: {{.name}}", "<p>{{.message}}</p>", true))

		et, err := repo.EmailTemplate.GetActiveByType(context.Background(), nil, "contact_notification")
		require.NoError(t, err)
		assert.Equal(t, "Lead: {{.name}}", et.Subject)
		assert.Equal(t, "<p>{{.message}}</p>", et.HTMLContent)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("none active", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT \* FROM "email_templates"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		et, err := repo.EmailTemplate.GetActiveByType(context.Background(), nil, "newsletter_welcome")
		assert.Nil(t, et)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestSiteSettingGetAll(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "site_settings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}).
			AddRow("1", "contact_email", "hello@northwind.dev").
			AddRow("2", "contact_phone", "+1 555 0100"))

	settings, err := repo.SiteSetting.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"contact_email": "hello@northwind.dev",
		"contact_phone": "+1 555 0100",
	}, settings)
}

func TestContactSubmissionList(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contact_submissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "contact_submissions" ORDER BY created_at desc LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "status"}).
			AddRow("c-3", "Ada", "ada@x.com", "new").
			AddRow("c-2", "Linus", "linus@x.com", "read"))

	rows, total, err := repo.ContactSubmission.List(context.Background(), nil, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ada", rows[0].Name)
	assert.Equal(t, constant.SubmissionStatusRead, rows[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
