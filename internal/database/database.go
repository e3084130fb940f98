package database

import (
	"context"
	"time"

	"github.com/SeakMengs/NorthwindSite/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectReturnGormDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		// Errors are left as *pgconn.PgError so callers can read the
		// constraint text, see repository.IsUniqueViolation.
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDb, err := db.DB()
	if err != nil {
		return nil, err
	}

	idleTime, err := time.ParseDuration(cfg.MaxIdleTime)
	if err != nil {
		idleTime = 15 * time.Minute
	}

	sqlDb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDb.SetConnMaxIdleTime(idleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDb.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}
