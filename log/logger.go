// Package log provides a global logger for the project
package log

import (
	"context"
	"os"
	"strconv"

	"go.uber.org/zap"

	"titlebot/constants/envvar"
	"titlebot/utils/ctxutil"
)

// Logger is the global logger, used to derive package loggers
var Logger = initLogger()

func initLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

// Named returns a package logger derived from the global logger
func Named(name string) *zap.Logger {
	return Logger.Named(name)
}

// VerboseLogsEnabled returns true if verbose logs are enabled.
// An unset variable means false and is not worth a warning.
func VerboseLogsEnabled(ctx context.Context) bool {
	raw, ok := os.LookupEnv(envvar.VerboseLogsEnabled)
	if !ok || raw == "" {
		return false
	}
	verboseLogsEnabled, err := strconv.ParseBool(raw)
	if err != nil {
		ctxutil.Logger(ctx, Logger).Warn("Failed to parse verbose logs enabled", zap.Error(err))
	}
	return verboseLogsEnabled
}
