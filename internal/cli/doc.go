// Parses flags and drives the startup sequence for the river server.
//
// The server accepts the following flags:
//
//	-h                  Print usage to stdout and exit.
//	-version            Print the version string and exit.
//	-c <command>        Run `sh -c <command>` at startup instead of init.
//	-config <dir>       Use <dir>/init as the init executable.
//	-log-level <level>  One of error, warning, info, or debug.
//
// The checks run in a fixed order: -h wins over everything, then any stray
// positional argument is rejected, then -version is honored, then the log
// level literal is validated and applied. Usage goes to stdout with exit 0
// for -h and to stderr with exit 1 for every usage error.
//
// After the flags are settled, Execute resolves the startup command, wires
// the low-level log bridge, and runs the server lifecycle with guaranteed
// teardown of the child process group and the server itself.
package cli
