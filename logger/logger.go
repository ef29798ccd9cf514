// Package logger holds the process-wide diagnostic logger.
//
// Diagnostics go to stderr and are quiet by default (warnings and above).
// User-facing output is never written through this package.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = newProduction()

func newProduction() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// SetVerbose switches to the development logger at debug level when verbose is true,
// and back to the quiet production logger otherwise.
func SetVerbose(verbose bool) {
	if !verbose {
		Set(newProduction())
		return
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		Error("logger init", zap.Error(err))
		return
	}
	Set(l)
}

// Set replaces the process-wide logger. A nil logger disables logging.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	_ = logger.Sync()
	logger = l
}

// Sync flushes any buffered log entries.
func Sync() { _ = logger.Sync() }

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}
