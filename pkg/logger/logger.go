package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var log = slog.Default()

// Init configures the package logger. Production uses JSON output, every other
// environment uses text. LOG_LEVEL overrides the default level.
func Init(environment string) {
	InitWithWriter(os.Stdout, environment, os.Getenv("LOG_LEVEL"))
}

func InitWithWriter(w io.Writer, environment, level string) {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level, environment),
		AddSource: false,
	}

	var handler slog.Handler
	switch strings.ToLower(environment) {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// ParseLevel converts a level name to slog.Level. An empty or unknown name
// falls back to debug in development and info elsewhere.
func ParseLevel(level, environment string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	if strings.ToLower(environment) == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func Debug(msg string, args ...any) { log.Debug(msg, normalize(args)...) }
func Info(msg string, args ...any)  { log.Info(msg, normalize(args)...) }
func Warn(msg string, args ...any)  { log.Warn(msg, normalize(args)...) }
func Error(msg string, args ...any) { log.Error(msg, normalize(args)...) }

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets callers pass a bare error, as in logger.Error("msg", err).
func normalize(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{slog.Any("error", err)}
		}
	}
	return args
}
