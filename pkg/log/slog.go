package log

import (
	"context"
	"log/slog"
)

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger adapts l to Logger. A nil l uses slog.Default() at call time.
func NewSlogLogger(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

// Default returns a Logger backed by the process-wide slog default, which
// SetupLogger configures.
func Default() Logger {
	return &slogLogger{}
}

func (s *slogLogger) logger() *slog.Logger {
	if s.l == nil {
		return slog.Default()
	}
	return s.l
}

func (s *slogLogger) Debug(msg string, fields ...any) { s.logger().Debug(msg, fields...) }
func (s *slogLogger) Info(msg string, fields ...any) { s.logger().Info(msg, fields...) }
func (s *slogLogger) Warn(msg string, fields ...any) { s.logger().Warn(msg, fields...) }

func (s *slogLogger) Error(msg string, fields ...any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			fields = append([]any{ErrAttr(err)}, fields[1:]...)
		}
	}
	s.logger().Error(msg, fields...)
}

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{l: s.logger().With(fields...)}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger().Enabled(ctx, slog.Level(level))
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}
func (nopLogger) Error(string, ...any) {}
func (n nopLogger) With(...any) Logger { return n }
func (nopLogger) Enabled(context.Context, Level) bool { return false }
