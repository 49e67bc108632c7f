// Package logging provides the process-wide structured logger for lockq.
//
// It wraps [log/slog] behind a single global instance so that log level
// and destination are controlled in one place. Library packages only log
// at Debug level (view refreshes, join snapshot sizes); callers that never
// call Init get an Info-level text logger on stdout, which keeps the
// library quiet by default.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	logger   *slog.Logger
	loggerMu sync.RWMutex
)

// LogLevel represents logging verbosity.
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// Config holds logger configuration.
type Config struct {
	Level  LogLevel
	Output io.Writer // nil for stdout
	Format string    // "json" or "text"
}

// Init initializes the global logger. Call it once at program startup,
// before goroutines that may log are spawned; later calls return an error.
func Init(config Config) error {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if logger != nil {
		return fmt.Errorf("logger already initialized")
	}
	logger = build(config)
	return nil
}

func build(config Config) *slog.Logger {
	writer := config.Output
	if writer == nil {
		writer = os.Stdout
	}

	var level slog.Level
	switch config.Level {
	case LevelDebug:
		level = slog.LevelDebug
	case LevelWarn:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}
	return slog.New(handler)
}

// GetLogger returns the global logger, lazily initializing a default one
// when Init was never called.
func GetLogger() *slog.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		logger = build(Config{Level: LevelInfo, Format: "text"})
	}
	return logger
}
