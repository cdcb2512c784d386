package logger

import (
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

// Init sets up the global logger with the given level, emitting JSON
// records when json is true and plain text otherwise.
func Init(level string, json bool) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the default logger, initializing it lazily.
func Get() *slog.Logger {
	if defaultLogger == nil {
		Init("info", false)
	}
	return defaultLogger
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}
