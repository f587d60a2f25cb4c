package logging

import (
	"context"
	"fmt"
	"log/slog"
)

// Forwards leveled text lines into the log sink under a fixed scope.
//
// A Bridge is the entry point for components that cannot log through slog
// themselves, such as the wire codec. It is configured once at bootstrap
// with an initial verbosity; lines below that verbosity are dropped at the
// source, and the process-wide threshold still applies to the rest.
type Bridge struct {
	verbosity slog.Level
	logger    *slog.Logger
}

// NewBridge creates a bridge delivering lines at or above verbosity,
// scoped under scope in the default logger's sink.
func NewBridge(scope string, verbosity slog.Level) *Bridge {
	return &Bridge{
		verbosity: verbosity,
		logger:    slog.New(slog.Default().Handler().WithGroup(scope)),
	}
}

// Linef delivers one formatted line at the given level.
//
// Safe to call on a nil bridge; the line is dropped.
func (b *Bridge) Linef(level slog.Level, format string, args ...any) {
	if b == nil || level < b.verbosity {
		return
	}
	b.logger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}
