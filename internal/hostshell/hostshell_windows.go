//go:build windows

package hostshell

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

const shellName = "bash.exe"

var fallbackShell = filepath.Join(os.Getenv("SystemRoot"), "System32", shellName)

// systemDir returns the Windows system directory, e.g. C:\Windows\System32.
func systemDir() (string, error) {
	return windows.GetSystemDirectory()
}
