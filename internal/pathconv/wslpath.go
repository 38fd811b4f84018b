package pathconv

import (
	"errors"
	"fmt"

	"github.com/sverrirab/gitwrap/internal/protocol"
)

type direction int

const (
	toLinux direction = iota
	toWindows
)

func (d direction) String() string {
	if d == toLinux {
		return "wslpath -u"
	}
	return "wslpath -w"
}

var errEmptyPath = errors.New("empty result")

// wslpath runs one conversion. A non-zero exit or an empty first line is an
// error; the caller decides whether to fall back to the original string.
func (c *Converter) wslpath(dir direction, path string) (string, error) {
	var command string
	switch dir {
	case toLinux:
		command = protocol.ToLinuxCommand(path)
	default:
		command = protocol.ToWindowsCommand(path)
	}

	res := c.run.Run(command)
	if res.Err != nil {
		return "", fmt.Errorf("%s %q: %w", dir, path, res.Err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("%s %q failed: %s", dir, path, res)
	}
	out := protocol.ParseConverted(res.Lines)
	if out == "" {
		return "", fmt.Errorf("%s %q: %w", dir, path, errEmptyPath)
	}
	return out, nil
}
