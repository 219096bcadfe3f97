package sprouts

import (
	"log/slog"
	"sync/atomic"
)

// loggerPtr stores the active logger. Nothing is logged until SetLogger is
// called.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger configures the logger used by matches created afterwards.
// Pass nil to go back to discarding output.
//
// Levels:
//   - [slog.LevelDebug]: phase changes and rolled back draws
//   - [slog.LevelInfo]: match start, dots placed, snapshots written
//   - [slog.LevelWarn]: title font could not be loaded
//   - [slog.LevelError]: failed snapshots
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
