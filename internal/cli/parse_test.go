package cli

import "testing"

func TestParseFlags(t *testing.T) {
	opts, err := Parse([]string{
		"-c", "foo bar",
		"-config", "/etc/river",
		"-log-level", "debug",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if opts.Command != "foo bar" {
		t.Fatalf("Command = %q, want %q", opts.Command, "foo bar")
	}
	if opts.ConfigDir != "/etc/river" {
		t.Fatalf("ConfigDir = %q, want /etc/river", opts.ConfigDir)
	}
	if opts.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", opts.LogLevel)
	}
	if opts.Help || opts.Version || len(opts.Leftover) != 0 {
		t.Fatalf("unexpected extras in %+v", opts)
	}
}

func TestParseHelpAndVersion(t *testing.T) {
	opts, err := Parse([]string{"-version", "-h"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !opts.Help || !opts.Version {
		t.Fatalf("Help = %v, Version = %v, want both true", opts.Help, opts.Version)
	}
}

// -h must survive parsing next to flags whose values are invalid; the
// precedence check in Execute depends on that.
func TestParseHelpWithBadLevel(t *testing.T) {
	opts, err := Parse([]string{"-log-level", "banana", "-h"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !opts.Help {
		t.Fatal("Help = false, want true")
	}
	if opts.LogLevel != "banana" {
		t.Fatalf("LogLevel = %q, want banana (validated later)", opts.LogLevel)
	}
}

func TestParseUnknownFlag(t *testing.T) {
	if _, err := Parse([]string{"-bogus"}); err == nil {
		t.Fatal("Parse accepted an unknown flag")
	}
}

func TestParseMissingValue(t *testing.T) {
	for _, flag := range []string{"-c", "-config", "-log-level"} {
		if _, err := Parse([]string{flag}); err == nil {
			t.Fatalf("Parse accepted %s with no value", flag)
		}
	}
}

func TestParseLeftover(t *testing.T) {
	opts, err := Parse([]string{"stray", "-version"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(opts.Leftover) != 1 || opts.Leftover[0] != "stray" {
		t.Fatalf("Leftover = %v, want [stray]", opts.Leftover)
	}
}
