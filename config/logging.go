package config

import (
	"github.com/united-manufacturing-hub/umh-utils/logger"
	"go.uber.org/zap"
)

// InitLogging replaces the global zap logger. Everything in this module logs
// through zap.S(), so call it before building anything.
func InitLogging(level string) *zap.SugaredLogger {
	return logger.New(level)
}
