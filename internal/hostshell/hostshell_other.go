//go:build !windows

package hostshell

const (
	shellName     = "bash"
	fallbackShell = "/bin/bash"
)

func systemDir() (string, error) {
	return "/bin", nil
}
