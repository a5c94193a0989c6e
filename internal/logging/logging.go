// Package logging provides structured logging on top of log/slog with file
// rotation. Logging is off by default; a UI process must never write log
// noise to the terminal it is drawing on.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger initialization.
type Config struct {
	// FilePath is the log file destination; empty disables logging.
	FilePath string
	// Level is the minimum level to emit.
	Level slog.Level
	// JSON selects the JSON handler instead of text.
	JSON bool
	// MaxSizeMB is the rotation threshold; zero means lumberjack's default.
	MaxSizeMB int
	// MaxBackups is how many rotated files to keep.
	MaxBackups int
}

var (
	global *slog.Logger
	noop   = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init configures the process-wide logger. With an empty FilePath the
// logger is a noop.
func Init(cfg Config) {
	if cfg.FilePath == "" {
		global = noop
		return
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	global = slog.New(handler)
}

// Get returns the process logger, or a noop logger before Init.
func Get() *slog.Logger {
	if global == nil {
		return noop
	}

	return global
}

// Debug logs at debug level on the process logger.
func Debug(msg string, args ...any) { Get().Debug(msg, args...) }

// Info logs at info level on the process logger.
func Info(msg string, args ...any) { Get().Info(msg, args...) }

// Warn logs at warn level on the process logger.
func Warn(msg string, args ...any) { Get().Warn(msg, args...) }

// Error logs at error level on the process logger.
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// ParseLevel maps a config string to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
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
