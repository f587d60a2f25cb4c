package main

import (
	"log/slog"
	"os"

	"github.com/riverlabs/river/internal"
	"github.com/riverlabs/river/internal/cli"
	"github.com/riverlabs/river/internal/logging"
)

// The entry point for the river server.
//
// Initializes logging, displays startup information, and executes the
// startup sequence. If any error occurs during execution, it exits with a
// non-zero code.
func main() {
	logging.SetLevel(defaultLevel())
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, isatty(os.Stderr))))

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("river is starting",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Returns the log level derived from build-time linker flags.
//
// The -log-level flag overrides this during cli.Execute.
func defaultLevel() slog.Level {
	if internal.IsDebug() {
		return slog.LevelDebug
	}
	if internal.IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Whether the given file is an interactive terminal.
func isatty(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
