// Package supervisor launches the startup command as a child process in
// its own session and tears the whole process group down on shutdown.
//
// The child becomes its own process-group leader at launch, so its pid
// doubles as the group id. Teardown signals the negated pid, reaching the
// command itself and every descendant it spawned. The child's exit never
// stops the server; the handle exists only so the group can be signalled.
package supervisor
