// Package logging owns the process-wide severity threshold and the log
// line format.
//
// The threshold is a single mutable value: it is seeded from build-mode
// linker flags in main, optionally overridden once by the -log-level flag,
// and only read after that. Every log call in the process consults it
// through [Enabled], either directly or via the [Handler] installed as the
// slog default.
//
// The handler renders one line per record on standard error:
//
//	<level>(scope): message key=value
//
// where level is one of error, warning, info, or debug, and the scope (set
// with WithGroup) is omitted for the default scope:
//
//	info: server listening on socket path=/run/user/1000/river/control.sock
//	warning(wire): rejected malformed envelope (12 bytes)
//
// [Bridge] carries leveled text lines from components that cannot log
// structurally into the same sink.
package logging
