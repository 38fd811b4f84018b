//go:build !windows

package shellexec

import "os/exec"

func hideWindow(*exec.Cmd) {}
