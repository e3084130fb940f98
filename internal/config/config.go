package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/SeakMengs/NorthwindSite/internal/env"
)

// Used when MAIL_FROM_EMAIL is not set.
const DefaultFromEmail = "noreply@northwind.dev"

type Config struct {
	Port        string
	ENV         string
	FrontendURL string
	DB          DatabaseConfig
	RateLimiter RateLimiterConfig
	Mail        MailConfig
	Minio       MinioConfig
	Auth        AuthConfig
	Admin       AdminSeedConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
	// Empty means the limiter keeps its windows in memory.
	RedisAddr     string
	RedisPassword string
}

type AuthConfig struct {
	JWT_SECRET      string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type AdminSeedConfig struct {
	Email    string
	Password string
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	DB_SSLMODE   string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.DB_HOST, d.DB_USERNAME, d.DB_PASSWORD, d.DB_DATABASE, d.DB_PORT, d.DB_SSLMODE)
}

type MailProvider string

const (
	MailProviderResend   MailProvider = "resend"
	MailProviderSendGrid MailProvider = "sendgrid"
)

type MailConfig struct {
	PROVIDER      MailProvider
	RESEND        ResendConfig
	SEND_GRID     SendGridConfig
	FROM_EMAIL    string
	FROM_NAME     string
	ADMIN_EMAIL   string
	SUPPORT_EMAIL string
	// When true a failed provider call is logged and reported as sent
	// with a locally generated message id.
	FallbackOnTransportFailure bool
}

type ResendConfig struct {
	API_KEY string
}

type SendGridConfig struct {
	API_KEY string
}

type MinioConfig struct {
	ENDPOINT      string
	ACCESS_KEY    string
	SECRET_KEY    string
	USE_SSL       bool
	RESUME_BUCKET string
	// Base used to build public links to uploaded objects, e.g. https://cdn.northwind.dev
	PUBLIC_URL string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	isProduction := strings.EqualFold(env.GetString("ENV", "development"), "production")

	return Config{
		Port:        env.GetString("PORT", "8080"),
		ENV:         env.GetString("ENV", "development"),
		FrontendURL: env.GetString("FRONTEND_URL", "http://localhost:3000"),
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "northwind"),
			DB_SSLMODE:   env.GetString("DB_SSLMODE", "disable"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		// Public forms are cheap to spam, keep the default budget small.
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 20),
			TimeFrame:            env.GetDuration("RATE_LIMIT_TIME_FRAME", time.Minute),
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
			RedisAddr:            env.GetString("REDIS_ADDR", ""),
			RedisPassword:        env.GetString("REDIS_PASSWORD", ""),
		},
		Mail: MailConfig{
			PROVIDER:      MailProvider(strings.ToLower(env.GetString("MAIL_PROVIDER", string(MailProviderResend)))),
			FROM_EMAIL:    env.GetString("MAIL_FROM_EMAIL", DefaultFromEmail),
			FROM_NAME:     env.GetString("MAIL_FROM_NAME", "Northwind Labs"),
			ADMIN_EMAIL:   env.GetString("MAIL_ADMIN_EMAIL", "hello@northwind.dev"),
			SUPPORT_EMAIL: env.GetString("MAIL_SUPPORT_EMAIL", "support@northwind.dev"),
			RESEND: ResendConfig{
				API_KEY: env.GetString("MAIL_RESEND_API_KEY", ""),
			},
			SEND_GRID: SendGridConfig{
				API_KEY: env.GetString("MAIL_SEND_GRID_API_KEY", ""),
			},
			// Demo deployments have no verified sender, so outside production
			// we swallow transport failures unless told otherwise.
			FallbackOnTransportFailure: env.GetBool("MAIL_FALLBACK_ON_FAILURE", !isProduction),
		},
		Minio: MinioConfig{
			ENDPOINT:      env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
			ACCESS_KEY:    env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY:    env.GetString("MINIO_SECRET_KEY", ""),
			USE_SSL:       env.GetBool("MINIO_USE_SSL", false),
			RESUME_BUCKET: env.GetString("MINIO_RESUME_BUCKET", "resumes"),
			PUBLIC_URL:    env.GetString("MINIO_PUBLIC_URL", ""),
		},
		Auth: AuthConfig{
			JWT_SECRET:      env.GetString("AUTH_JWT_SECRET", ""),
			AccessTokenTTL:  env.GetDuration("AUTH_ACCESS_TOKEN_TTL", 15*time.Minute),
			RefreshTokenTTL: env.GetDuration("AUTH_REFRESH_TOKEN_TTL", 7*24*time.Hour),
		},
		Admin: AdminSeedConfig{
			Email:    env.GetString("ADMIN_EMAIL", ""),
			Password: env.GetString("ADMIN_PASSWORD", ""),
		},
	}
}
