// Package observability provides the logger used by the domain store and the
// command front end.
package observability

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the narrow interface services depend on.
type Logger interface {
	Info(msg string)
	Error(msg string)
}

type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) Info(msg string)  { s.l.Info(msg) }
func (s *slogLogger) Error(msg string) { s.l.Error(msg) }

// NewLogger returns a text logger on stderr at the given level
// (debug|info|warn|error, default info).
func NewLogger(level string) Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return &slogLogger{l: slog.New(handler)}
}
