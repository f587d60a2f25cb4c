package supervisor

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// Shell used to run the startup command.
const shell = "/bin/sh"

// Tracks a launched startup command by its process-group id.
type Handle struct {
	pgid int
}

// Launch runs command under the shell in a new session.
//
// An empty command means there is nothing to run; this is common and
// returns no handle. The child inherits the full environment and the
// parent's stdio, as a plain fork and exec would leave it. A launch
// failure (fork, or a missing shell) is fatal to the caller; a command
// that starts and then fails is the command's own problem and is only
// visible through its exit status.
func Launch(command string) (*Handle, error) {
	if command == "" {
		return nil, nil
	}

	cmd := newCommand(command)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("launching %q: %w", command, err)
	}

	// Reap the child when it exits so it does not linger as a zombie. Its
	// exit does not stop the server.
	go cmd.Wait()

	slog.Debug("startup command launched", "pgid", cmd.Process.Pid, "command", command)

	return &Handle{pgid: cmd.Process.Pid}, nil
}

// Builds the shell invocation for a startup command: parent stdio
// inherited, new session so the child leads its own process group.
func newCommand(command string) *exec.Cmd {
	cmd := exec.Command(shell, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd
}

// TerminateGroup sends SIGTERM to the child's whole process group so that
// descendants the command spawned are terminated along with it.
//
// Safe to call on a nil handle. Delivery failure is logged, never fatal;
// shutdown proceeds regardless.
func (h *Handle) TerminateGroup() {
	if h == nil {
		return
	}
	if err := unix.Kill(-h.pgid, unix.SIGTERM); err != nil {
		slog.Warn("failed to signal startup command process group",
			"pgid", h.pgid, "error", err)
	}
}
