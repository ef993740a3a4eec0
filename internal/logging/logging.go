// Package logging provides a shared, structured logger for the cli-carousel
// application.
//
// It wraps the standard library's [log/slog] package and provides a single
// initialization point so all components share the same output handler and
// log level. The log level can be controlled at startup via the
// CLI_CAROUSEL_LOG_LEVEL environment variable (debug, info, warn, error).
// If unset, the default level is INFO.
//
// Usage:
//
//	log := logging.New("deck")       // creates a logger tagged with component="deck"
//	log.Info("loaded deck", "path", p)
//	log.Error("failed to render slide", "error", err)
//
// The carousel UI owns the whole terminal while it runs, so output goes to
// the file named by CLI_CAROUSEL_LOG_FILE when it is set. Without it, logs
// are written to stderr, except while the UI runs: the run command calls
// UseDefaultFile so nothing is drawn over the alt screen. Events that fire
// while the UI runs, such as deck refreshes, log at Debug.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	levelEnv = "CLI_CAROUSEL_LOG_LEVEL"
	fileEnv  = "CLI_CAROUSEL_LOG_FILE"
)

var (
	// initLogger ensures the base logger is created exactly once across all
	// goroutines, even if multiple components call New concurrently.
	initLogger sync.Once

	// baseLogger is the singleton logger instance shared by all components.
	// Component-specific loggers are derived from this via With().
	baseLogger *slog.Logger

	// output is shared by every logger so it can be redirected after the
	// component loggers were created.
	output = &switchWriter{w: os.Stderr}
)

// switchWriter is an io.Writer whose destination can change at runtime.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

// New returns a structured logger scoped to the given component name.
//
// The component name is added as a "component" attribute to every log entry
// produced by the returned logger. If component is empty, the base logger is
// returned without any additional attributes.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		output.set(openOutput(os.Getenv(fileEnv)))
		baseLogger = newBase(os.Getenv(levelEnv), output)
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

func newBase(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

// UseDefaultFile sends all log output to path, unless CLI_CAROUSEL_LOG_FILE
// already names a file. The directory is created when missing.
func UseDefaultFile(path string) error {
	New("")
	if strings.TrimSpace(os.Getenv(fileEnv)) != "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	output.set(f)
	return nil
}

// openOutput appends to path, falling back to stderr when path is empty or
// cannot be opened.
func openOutput(path string) io.Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return os.Stderr
	}
	return f
}

// parseLevel converts a human-readable log level string to a [slog.Level].
//
// Recognized values (case-insensitive, whitespace-trimmed):
//   - "debug"           → slog.LevelDebug
//   - "warn", "warning" → slog.LevelWarn
//   - "error"           → slog.LevelError
//   - anything else     → slog.LevelInfo (the default)
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
