package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stdout, slog.LevelInfo)
)

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Info(format string, args ...any) {
	current().Info(fmt.Sprintf(format, args...))
}

func Debug(format string, args ...any) {
	current().Debug(fmt.Sprintf(format, args...))
}

func Warn(format string, args ...any) {
	current().Warn(fmt.Sprintf(format, args...))
}

func Error(format string, args ...any) {
	current().Error(fmt.Sprintf(format, args...))
}

func SetLevel(level slog.Level) {
	SetOutput(os.Stdout, level)
}

// SetOutput redirects all logging to w at the given level.
func SetOutput(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, level)
}

// ParseLevel maps debug|info|warn|error to a slog level.
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
