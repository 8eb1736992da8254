package logger

import (
	"log/slog"
	"os"

	ports "jira-pr-sync/internal/domain/ports/output"
)

type slogLogger struct {
	l *slog.Logger
}

// New builds the ports.Logger for the given environment: text at debug level
// for dev/test, JSON at info level otherwise.
func New(env string) ports.Logger {
	var handler slog.Handler
	switch env {
	case "dev", "test":
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &slogLogger{l: slog.New(handler)}
}

func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) ports.Logger {
	return &slogLogger{l: s.l.With(args...)}
}
