package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcontext "github.com/SeakMengs/NorthwindSite/internal/app_context"
	"github.com/SeakMengs/NorthwindSite/internal/auth"
	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/SeakMengs/NorthwindSite/internal/controller"
	"github.com/SeakMengs/NorthwindSite/internal/database"
	"github.com/SeakMengs/NorthwindSite/internal/env"
	filestorage "github.com/SeakMengs/NorthwindSite/internal/file_storage"
	"github.com/SeakMengs/NorthwindSite/internal/mailer"
	"github.com/SeakMengs/NorthwindSite/internal/metrics"
	"github.com/SeakMengs/NorthwindSite/internal/middleware"
	"github.com/SeakMengs/NorthwindSite/internal/notification"
	ratelimiter "github.com/SeakMengs/NorthwindSite/internal/rate_limiter"
	"github.com/SeakMengs/NorthwindSite/internal/repository"
	"github.com/SeakMengs/NorthwindSite/internal/route"
	"github.com/SeakMengs/NorthwindSite/internal/submission"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const shutdownTimeout = 30 * time.Second

// this function run before main
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

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected")

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	// Custom validation for the admin request bodies bound by gin
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(util.JSONTagName)
		if err := util.RegisterCustomValidations(v); err != nil {
			logger.Panic(err)
		}
	}

	mailClient, err := mailer.NewClient(cfg.Mail, cfg.IsProduction())
	if err != nil {
		logger.Panic(err)
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	transport := mailer.NewTransport(mailClient, cfg.Mail, logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger)
	dispatcher := notification.NewDispatcher(repo.EmailTemplate, transport, notification.NewConfig(cfg), logger)
	storage := filestorage.NewMinioStorage(s3, cfg.Minio, logger)
	submissions := submission.NewService(submission.StoresFromRepository(repo), dispatcher, storage, logger)

	app := appcontext.Application{
		Config:      &cfg,
		Logger:      logger,
		Repository:  repo,
		Mailer:      transport,
		Notifier:    dispatcher,
		Submissions: submissions,
		JWTService:  jwtService,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))

	// Resumes are capped at 5MB, leave room for the other fields.
	r.MaxMultipartMemory = 8 << 20

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)
	r.GET("/healthz", _controller.Index.Healthz)
	r.GET("/metrics", metrics.Handler())

	rApi := r.Group("/api")

	route.V1_Forms(rApi, _controller.Submission, _middleware)
	route.V1_Careers(rApi, _controller.Career)
	route.V1_Site(rApi, _controller.Site)
	route.V1_AdminAuth(rApi, _controller.Auth, _middleware)
	route.V1_Admin(rApi, _controller.Admin, _middleware)

	server := &http.Server{
		Addr:    "0.0.0.0:" + app.Config.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Error running server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown: %v", err)
	}

	// Notifications run past the response, let them finish before the db closes.
	submissions.Wait()
}
