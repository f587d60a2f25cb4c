package paths

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/riverlabs/river/internal"
)

// Leaf name of the init script inside a config directory.
const initLeaf = "init"

// ErrNotExecutable marks an init script that exists but cannot be executed.
// This is the one resolution failure that aborts startup; a missing script
// merely means no script runs.
var ErrNotExecutable = errors.New("init script is not executable")

// InitScript computes the candidate path for the init script.
//
// An explicit config directory wins unconditionally. Otherwise
// $XDG_CONFIG_HOME/river/init is tried, then $HOME/.config/river/init. An
// empty result means the chain is exhausted, which is not an error.
func InitScript(configDir string) string {
	if configDir != "" {
		return filepath.Join(configDir, initLeaf)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, internal.Name, initLeaf)
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", internal.Name, initLeaf)
	}
	return ""
}

// ResolveInitScript resolves and validates the init script path.
//
// A path built from an explicit config directory is returned as-is; whether
// it can actually run surfaces when the child is launched. A path found
// through the environment is probed for execute permission first: a script
// that exists but cannot be executed aborts startup with
// [ErrNotExecutable], while a missing or otherwise inaccessible script is
// logged and resolves to no script at all.
func ResolveInitScript(configDir string) (string, error) {
	if configDir != "" {
		return filepath.Join(configDir, initLeaf), nil
	}

	path := InitScript("")
	if path == "" {
		slog.Debug("no config directory in the environment, skipping init script")
		return "", nil
	}

	err := unix.Access(path, unix.X_OK)
	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, unix.EACCES):
		slog.Error("init script exists but is not executable", "path", path)
		return "", fmt.Errorf("%w: %s", ErrNotExecutable, path)
	case errors.Is(err, unix.ENOENT):
		slog.Debug("no init script found", "path", path)
		return "", nil
	default:
		slog.Warn("cannot access init script, proceeding without one",
			"path", path, "error", err)
		return "", nil
	}
}
