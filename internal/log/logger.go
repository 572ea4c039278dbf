package log

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Logger is a custom structured logger on top of slog.Logger
// that logs in JSON format.
type Logger struct {
	slogger *slog.Logger
}

// NewLogger creates a new Logger that writes to the given writer.
// The probe tools pass os.Stderr because stdout carries the report.
//
// Debug entries are only written when debug is true.
func NewLogger(writer io.Writer, debug bool) Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slogger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	return Logger{
		slogger: slogger,
	}
}

// NewDiscardLogger creates a Logger that drops every entry.
func NewDiscardLogger() Logger {
	return Logger{
		slogger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
}

// WithRunID returns a copy of the logger that tags every entry with a
// fresh run_id, so the entries of one invocation can be grouped.
func (l Logger) WithRunID() Logger {
	return Logger{
		slogger: l.slogger.With("run_id", uuid.NewString()),
	}
}

// DebugNs logs a debug entry. The namespace is written as the leading "ns"
// attribute, followed by the pairs of the first KV.
func (l *Logger) DebugNs(namespace string, msg string, keyVals ...KV) {
	l.slogger.Debug(msg, kvToArgsNs(namespace, keyVals...)...)
}

// WarnNs logs a warning with an "ns" attribute.
func (l *Logger) WarnNs(namespace string, msg string, keyVals ...KV) {
	l.slogger.Warn(msg, kvToArgsNs(namespace, keyVals...)...)
}
