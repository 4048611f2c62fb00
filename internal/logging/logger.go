// Package logging wraps log/slog for keyhelp. The TUI owns the terminal, so
// logs only ever go to a rotated file (or a writer supplied by tests); with
// no destination configured every call is discarded.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger
type Logger struct {
	logger  *slog.Logger
	enabled bool
}

// LogFormat represents the output format for logs
type LogFormat string

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the rotated log file. Empty disables logging unless
	// Output is set.
	FilePath string
	// Output replaces the file writer when non-nil.
	Output     io.Writer
	Level      slog.Level
	Format     LogFormat
	MaxSizeMB  int
	MaxBackups int
}

var (
	mu     sync.RWMutex
	global *Logger
	closer io.Closer

	noopLogger = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init replaces the global logger. Any file opened by a previous Init is
// closed first.
func Init(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	if err := closeLocked(); err != nil {
		return err
	}

	writer := config.Output
	if writer == nil {
		if config.FilePath == "" {
			global = noopLogger
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		rotating := &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			Compress:   true,
		}
		writer = rotating
		closer = rotating
	}

	opts := &slog.HandlerOptions{Level: config.Level}
	var handler slog.Handler
	if config.Format == FormatJSON {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	global = &Logger{logger: slog.New(handler).With("app", "keyhelp"), enabled: true}
	return nil
}

// Get returns the global logger, or a noop logger before Init.
func Get() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		return noopLogger
	}
	return global
}

// Shutdown closes the log file and reverts to the noop logger.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()
	global = noopLogger
	return closeLocked()
}

func closeLocked() error {
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	if err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a Logger that adds args to every record, e.g.
// logging.Get().With("component", "search").
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), enabled: l.enabled}
}

// IsEnabled reports whether records are written anywhere.
func (l *Logger) IsEnabled() bool {
	return l.enabled
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// IsEnabled reports whether the global logger writes anywhere.
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel converts debug, info, warn or error to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// ParseFormat converts text or json to a LogFormat.
func ParseFormat(format string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format %q", format)
	}
}
