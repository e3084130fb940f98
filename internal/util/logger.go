package util

import (
	"strings"

	"go.uber.org/zap"
)

func NewLogger(env string) *zap.SugaredLogger {
	var logger *zap.SugaredLogger

	if strings.EqualFold(env, "production") {
		logger = zap.Must(zap.NewProduction()).Sugar()
	} else {
		logger = zap.Must(zap.NewDevelopment()).Sugar()
	}

	return logger.Named(GetAppSlug())
}

// For unit test
func NewNopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
