package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/riverlabs/river/internal"
	"github.com/riverlabs/river/internal/logging"
	"github.com/riverlabs/river/internal/paths"
	"github.com/riverlabs/river/internal/protocol"
	"github.com/riverlabs/river/internal/server"
	"github.com/riverlabs/river/internal/supervisor"
)

const usage = `usage: river [options]

  -h                  Print this help message and exit.
  -version            Print the version string and exit.
  -c <command>        Run ` + "`sh -c <command>`" + ` at startup instead of the init executable.
  -config <dir>       Use <dir>/init as the init executable.
  -log-level <level>  Set the log level to error, warning, info, or debug.
`

// Execute parses arguments, applies the log level override, and runs the
// server until its run loop returns.
//
// Usage problems never reach the caller: evaluate decides the stream and
// exit status, and Execute exits the process with them directly.
func Execute() error {
	opts, code, exit := evaluate(os.Args[1:], os.Stdout, os.Stderr)
	if exit {
		os.Exit(code)
	}
	return run(opts)
}

// Enforces the option precedence contract and applies the log level
// override.
//
// The check order is fixed: -h wins over everything and prints usage to
// stdout with status 0; then any stray positional argument is rejected;
// then -version prints the version string with status 0; then the log
// level literal is validated and applied. Parse failures and rejections
// print usage to stderr with status 1. exit reports whether the process
// should stop here instead of starting the server.
func evaluate(args []string, stdout, stderr io.Writer) (opts *Options, code int, exit bool) {
	opts, err := Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr)
		return nil, 1, true
	}

	if opts.Help {
		printUsage(stdout)
		return opts, 0, true
	}

	if len(opts.Leftover) > 0 {
		slog.Error("unexpected argument", "arg", opts.Leftover[0])
		printUsage(stderr)
		return opts, 1, true
	}

	if opts.Version {
		fmt.Fprintln(stdout, internal.VersionString())
		return opts, 0, true
	}

	if opts.LogLevel != "" {
		level, err := logging.ParseLevel(opts.LogLevel)
		if err != nil {
			slog.Error(err.Error())
			printUsage(stderr)
			return opts, 1, true
		}
		logging.SetLevel(level)
	}

	return opts, 0, false
}

func printUsage(w io.Writer) {
	io.WriteString(w, usage)
}

// Drives the server through its lifecycle.
//
// The order is a contract: resolve the startup command, configure the wire
// log bridge at the effective severity, ignore SIGPIPE, initialize and
// start the server, launch the startup command in its own process group,
// then block in the run loop. Teardown is deferred so the child group is
// signalled and the server deinitialized on every exit path, in reverse
// order of acquisition.
func run(opts *Options) error {
	command := opts.Command
	if command == "" {
		resolved, err := paths.ResolveInitScript(opts.ConfigDir)
		if err != nil {
			return err
		}
		command = resolved
	}

	protocol.EnableTrace(logging.NewBridge("wire", logging.Level()))

	// A client disconnecting mid-write must fail as an ordinary write error,
	// not terminate the process.
	signal.Ignore(syscall.SIGPIPE)

	srv, err := server.New(server.Config{})
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}
	defer srv.Stop()

	child, err := supervisor.Launch(command)
	if err != nil {
		return err
	}
	defer child.TerminateGroup()

	slog.Info("river is running", "pid", os.Getpid())

	srv.Run()

	slog.Info("shutting down")
	return nil
}
