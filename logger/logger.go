// Package logger provides the global structured logger for Hasami.
//
// The logger is a no-op until Initialize is called, so library packages
// can log unconditionally without forcing output on embedders that never
// opted in. The retention core itself stays silent; only the outer
// partition layer emits diagnostics.
package logger

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance.
var Logger *zap.SugaredLogger

func init() {
	// Safe no-op logger at package load time so callers never hit a nil
	// pointer before Initialize runs.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. With jsonOutput the production
// JSON encoder is used; otherwise the human-readable development console
// encoder.
func Initialize(jsonOutput bool) error {
	var zapLogger *zap.Logger
	var err error

	if jsonOutput {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		Logger.Sync()
	}
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Errorw logs an error message with structured fields
func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}
