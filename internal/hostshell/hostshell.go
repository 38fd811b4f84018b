// Package hostshell locates the WSL shell binary on the Windows host.
package hostshell

import (
	"os"
	"path/filepath"
)

// EnvShell overrides the shell location.
const EnvShell = "GITWRAP_SHELL"

// Locate returns the shell path to use. Precedence: $GITWRAP_SHELL, the
// configured path, then the platform default. The result is not checked for
// existence; a missing shell is reported by the invoker on first use.
func Locate(configured string) string {
	if p := os.Getenv(EnvShell); p != "" {
		return p
	}
	if configured != "" {
		return configured
	}
	return Default()
}

// Default returns the conventional shell location for this platform.
func Default() string {
	dir, err := systemDir()
	if err != nil || dir == "" {
		return fallbackShell
	}
	return filepath.Join(dir, shellName)
}
