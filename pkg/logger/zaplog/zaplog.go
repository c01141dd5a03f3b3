// Package zaplog adapts a zap logger to the mpns logger interface.
package zaplog

import (
	"go.uber.org/zap"

	"github.com/notifykit/mpns/pkg/logger"
)

// Adapter wraps a zap.SugaredLogger behind the logger.Logger interface.
type Adapter struct {
	sugar *zap.SugaredLogger
	level logger.LogLevel
}

// New creates a logger backed by the given zap logger.
func New(zl *zap.Logger, level logger.LogLevel) logger.Logger {
	return &Adapter{
		sugar: zl.Sugar(),
		level: level,
	}
}

// LogMode sets the log level and returns a new logger instance.
func (a *Adapter) LogMode(level logger.LogLevel) logger.Logger {
	return &Adapter{sugar: a.sugar, level: level}
}

// Info logs an informational message.
func (a *Adapter) Info(msg string, args ...any) {
	if a.level >= logger.Info {
		a.sugar.Infow(msg, args...)
	}
}

// Warn logs a warning message.
func (a *Adapter) Warn(msg string, args ...any) {
	if a.level >= logger.Warn {
		a.sugar.Warnw(msg, args...)
	}
}

// Error logs an error message.
func (a *Adapter) Error(msg string, args ...any) {
	if a.level >= logger.Error {
		a.sugar.Errorw(msg, args...)
	}
}

// Debug logs a debug message.
func (a *Adapter) Debug(msg string, args ...any) {
	if a.level >= logger.Debug {
		a.sugar.Debugw(msg, args...)
	}
}
