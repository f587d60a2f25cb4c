package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/riverlabs/river/internal"
)

const (

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for runtime files (control socket, PID).
//
//	Linux:   $XDG_RUNTIME_DIR/river or /run/user/<uid>/river
//	macOS:   ~/Library/Caches/river/run
func Runtime() string {
	if xdg.RuntimeDir != "" {
		return filepath.Join(xdg.RuntimeDir, internal.Name)
	}
	return filepath.Join(xdg.CacheHome, internal.Name, "run")
}

// Default path to the Unix domain socket for control commands.
func Socket() string {
	return filepath.Join(Runtime(), "control.sock")
}

// Default path to the PID file.
func PIDFile() string {
	return filepath.Join(Runtime(), internal.Name+".pid")
}
