package app

import (
	"log/slog"

	"github.com/treykane/cli-carousel/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// The TUI owns the terminal, so set CLI_CAROUSEL_LOG_FILE to see its output
// (see the logging package for details).
var appLog = logging.New("app")

// setStatusError updates the status bar with a user-facing error message and
// simultaneously logs a structured error entry with full context.
//
// The status parameter is displayed verbatim in the UI, while the err and any
// additional key-value attrs are included only in the log entry.
//
//	m.setStatusError("Deck reload failed", err, "dir", m.deck.Dir)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+1)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
