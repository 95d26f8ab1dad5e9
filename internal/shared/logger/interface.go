package logger

import (
	"log/slog"
	"os"
)

// Interface is the logging surface handed to every layer. Both the positional
// and the w-suffixed forms take alternating key/value pairs; the split exists
// only so call sites read naturally next to their slog counterparts.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	With(args ...any) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger wraps the process-wide slog handler set up by Init.
func NewLogger() Interface {
	return &slogLogger{logger: Get()}
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// Fatal logs at error level and exits. Only wiring code should call it.
func (l *slogLogger) Fatal(msg string, args ...any) {
	l.logger.Error(msg, args...)
	os.Exit(1)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...any) { l.logger.Debug(msg, keysAndValues...) }
func (l *slogLogger) Infow(msg string, keysAndValues ...any)  { l.logger.Info(msg, keysAndValues...) }
func (l *slogLogger) Warnw(msg string, keysAndValues ...any)  { l.logger.Warn(msg, keysAndValues...) }
func (l *slogLogger) Errorw(msg string, keysAndValues ...any) { l.logger.Error(msg, keysAndValues...) }

func (l *slogLogger) Fatalw(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
	os.Exit(1)
}
