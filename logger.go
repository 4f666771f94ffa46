package avatar

import (
	"context"
	"log/slog"
	"os"
)

// avatarLogLevel controls the log level for widget debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var avatarLogLevel = new(slog.LevelVar)

// avatarLogger is the package logger used by widgets and style sheets.
var avatarLogger = newDefaultLogger()

func newDefaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: avatarLogLevel}))
}

// SetVerbose enables or disables verbose/debug logging for the default logger.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		avatarLogLevel.Set(slog.LevelDebug)
	} else {
		avatarLogLevel.Set(slog.LevelInfo)
	}
}

// SetLogger replaces the package logger. Passing nil silences logging.
// Like the rest of the package, it must be called from the UI thread.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	avatarLogger = l
}

// Logger returns the current package logger so render backends can share it.
func Logger() *slog.Logger {
	return avatarLogger
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
