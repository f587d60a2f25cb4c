package supervisor

import (
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestNewCommandConfiguration(t *testing.T) {
	cmd := newCommand("echo hi")

	want := []string{shell, "-c", "echo hi"}
	if len(cmd.Args) != len(want) {
		t.Fatalf("Args = %v, want %v", cmd.Args, want)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Fatalf("Args = %v, want %v", cmd.Args, want)
		}
	}

	if cmd.Stdin != os.Stdin || cmd.Stdout != os.Stdout || cmd.Stderr != os.Stderr {
		t.Fatal("child does not inherit the parent's stdio")
	}
	if cmd.SysProcAttr == nil || !cmd.SysProcAttr.Setsid {
		t.Fatal("child is not started in its own session")
	}
}

func TestLaunchEmptyCommand(t *testing.T) {
	h, err := Launch("")
	if err != nil {
		t.Fatalf("Launch(\"\") error = %v", err)
	}
	if h != nil {
		t.Fatalf("Launch(\"\") = %+v, want no handle", h)
	}
}

func TestLaunchNewProcessGroup(t *testing.T) {
	h, err := Launch("sleep 30")
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	defer h.TerminateGroup()

	pgid, err := unix.Getpgid(h.pgid)
	if err != nil {
		t.Fatalf("Getpgid(%d) error = %v", h.pgid, err)
	}
	if pgid != h.pgid {
		t.Fatalf("child pgid = %d, want %d (child must lead its own group)", pgid, h.pgid)
	}
}

func TestTerminateGroup(t *testing.T) {
	h, err := Launch("sleep 30")
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	h.TerminateGroup()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if err := unix.Kill(h.pgid, 0); err != nil {
			return // child gone
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("child survived group termination")
}

func TestTerminateGroupNilHandle(t *testing.T) {
	var h *Handle
	h.TerminateGroup() // must not panic
}
