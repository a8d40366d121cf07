// Package log provides the structured logging interface used across gradlin.
//
// The interface is a thin, slog-compatible surface so that the numeric core
// can report progress without depending on a concrete backend. Production code
// uses NewSlogLogger; tests use TestLogger to capture and inspect records.
//
// Example usage:
//
//	logger := log.Default().With(
//	    log.ModelNameKey, "GradientDescent",
//	    log.ComponentKey, "linear",
//	)
//	logger.Info("fit finished",
//	    log.IterationKey, 1500,
//	    log.LossKey, 4.4834,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with log/slog.
//
// Fields are alternating key/value pairs. Error is special: when the first
// field is an error value it is logged under ErrAttrKey, and the stack trace
// carried by cockroachdb/errors is extracted by ErrFmtHandler.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)

	// With returns a Logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether a record at level would be emitted. Use it to
	// skip building expensive fields, e.g. formatting theta every iteration.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level with the same numeric values as slog.Level.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
