package gldraw

import (
	"log/slog"

	"github.com/gogpu/gldraw/internal/logging"
)

// SetLogger configures the logger for gldraw and all its sub-packages.
// By default, gldraw produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by gldraw:
//   - [slog.LevelDebug]: per-frame diagnostics (received events, compiled stages)
//   - [slog.LevelInfo]: lifecycle events (window opened, loop started/stopped)
//   - [slog.LevelWarn]: non-fatal issues (shader reload failures, close errors)
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	gldraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by gldraw.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
