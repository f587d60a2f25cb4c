package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestInitScriptCandidates(t *testing.T) {
	t.Run("explicit config dir wins", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		t.Setenv("HOME", "/home/u")
		if got := InitScript("/etc/river"); got != "/etc/river/init" {
			t.Fatalf("InitScript(/etc/river) = %q, want /etc/river/init", got)
		}
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		t.Setenv("HOME", "/home/u")
		if got := InitScript(""); got != "/xdg/river/init" {
			t.Fatalf("InitScript() = %q, want /xdg/river/init", got)
		}
	})

	t.Run("home fallback", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/home/u")
		if got := InitScript(""); got != "/home/u/.config/river/init" {
			t.Fatalf("InitScript() = %q, want /home/u/.config/river/init", got)
		}
	})

	t.Run("no environment", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "")
		if got := InitScript(""); got != "" {
			t.Fatalf("InitScript() = %q, want empty", got)
		}
	})
}

func TestResolveInitScript(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", "")

	path := filepath.Join(dir, "river", "init")

	t.Run("missing script resolves to none", func(t *testing.T) {
		got, err := ResolveInitScript("")
		if err != nil {
			t.Fatalf("ResolveInitScript() error = %v", err)
		}
		if got != "" {
			t.Fatalf("ResolveInitScript() = %q, want empty", got)
		}
	})

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("readable but not executable is fatal", func(t *testing.T) {
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0400); err != nil {
			t.Fatal(err)
		}
		_, err := ResolveInitScript("")
		if !errors.Is(err, ErrNotExecutable) {
			t.Fatalf("ResolveInitScript() error = %v, want ErrNotExecutable", err)
		}
	})

	t.Run("executable script resolves", func(t *testing.T) {
		if err := os.Chmod(path, 0755); err != nil {
			t.Fatal(err)
		}
		got, err := ResolveInitScript("")
		if err != nil {
			t.Fatalf("ResolveInitScript() error = %v", err)
		}
		if got != path {
			t.Fatalf("ResolveInitScript() = %q, want %q", got, path)
		}
	})

	t.Run("explicit dir skips the probe", func(t *testing.T) {
		got, err := ResolveInitScript("/nonexistent")
		if err != nil {
			t.Fatalf("ResolveInitScript(/nonexistent) error = %v", err)
		}
		if got != "/nonexistent/init" {
			t.Fatalf("ResolveInitScript(/nonexistent) = %q, want /nonexistent/init", got)
		}
	})
}
