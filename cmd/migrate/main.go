package main

import (
	"context"

	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/SeakMengs/NorthwindSite/internal/database"
	"github.com/SeakMengs/NorthwindSite/internal/env"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"github.com/SeakMengs/NorthwindSite/internal/repository"
	"github.com/SeakMengs/NorthwindSite/internal/util"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	defer logger.Sync()

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`).Error; err != nil {
		logger.Panic(err)
	}

	migrateErr := db.AutoMigrate(
		&model.ContactSubmission{},
		&model.ConsultationRequest{},
		&model.CareerListing{},
		&model.JobApplication{},
		&model.NewsletterSubscription{},
		&model.EmailTemplate{},
		&model.SiteSetting{},
		&model.AdminUser{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}
	logger.Info("Migration finished")

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := util.HashPassword(cfg.Admin.Password)
	if err != nil {
		logger.Panic(err)
	}

	repo := repository.NewRepository(db, logger)
	created, err := repo.AdminUser.CreateIfNotExists(context.Background(), nil, &model.AdminUser{
		Email:        cfg.Admin.Email,
		Name:         "Admin",
		PasswordHash: hash,
	})
	if err != nil {
		logger.Panic(err)
	}

	if created {
		logger.Infof("Seeded admin %s", cfg.Admin.Email)
	} else {
		logger.Infof("Admin %s already exists", cfg.Admin.Email)
	}
}
