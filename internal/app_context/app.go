package appcontext

import (
	"github.com/SeakMengs/NorthwindSite/internal/auth"
	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/SeakMengs/NorthwindSite/internal/mailer"
	"github.com/SeakMengs/NorthwindSite/internal/notification"
	"github.com/SeakMengs/NorthwindSite/internal/repository"
	"github.com/SeakMengs/NorthwindSite/internal/submission"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer wraps the configured email provider with the fallback policy.
	Mailer *mailer.Transport

	// Notifier renders templates and sends notification emails.
	Notifier *notification.Dispatcher

	// Submissions validates, stores and notifies for every public form.
	Submissions *submission.Service

	// JWTService manages JWT operations for the admin api such as generate, verify, refresh token.
	JWTService auth.JWTInterface
}
