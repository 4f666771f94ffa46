// Package cli implements the avatargen command-line interface.
//
// avatargen renders a circular avatar to PNG with the software backend. The
// CLI is built using cobra and logs via the charmbracelet/log library; the
// same logger backs the avatar package's slog output.
//
// # Commands
//
//   - render: Draw an avatar from an image (or a generated test pattern)
//   - styles: List the named styles in a TOML style sheet
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/go-theft-auto/avatar/backend/software"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// installLogger makes l the logger of the avatar library and gg.
func installLogger(l *log.Logger) {
	software.SetLogger(slog.New(l))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
