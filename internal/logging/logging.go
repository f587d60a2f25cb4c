package logging

import (
	"fmt"
	"log/slog"
)

// Process-wide severity threshold.
//
// Written during startup only: main seeds it from the build mode and the
// -log-level flag may override it once, both before any concurrent reader
// exists. Everything after that is reads.
var threshold slog.LevelVar

// SetLevel replaces the severity threshold.
func SetLevel(level slog.Level) {
	threshold.Set(level)
}

// Level returns the current severity threshold.
func Level() slog.Level {
	return threshold.Level()
}

// Enabled reports whether a record at the candidate level passes the
// threshold, i.e. whether the candidate is at least as severe.
func Enabled(level slog.Level) bool {
	return level >= threshold.Level()
}

// ParseLevel maps a -log-level literal to a level.
//
// Exactly four case-sensitive names are accepted: error, warning, info, and
// debug. Note the literal for the warn level is "warning"; "warn" is not
// accepted.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "error":
		return slog.LevelError, nil
	case "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}
	return 0, fmt.Errorf("invalid log level: %q", name)
}

// LevelName returns the literal for a level, matching what -log-level
// accepts.
func LevelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warning"
	case level >= slog.LevelInfo:
		return "info"
	default:
		return "debug"
	}
}
