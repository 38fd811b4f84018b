// Package pathconv translates paths between Windows and WSL form and checks
// whether a string names an entry in the WSL filesystem. Every query goes
// through a Runner, which spawns one WSL shell per call.
package pathconv

import (
	"github.com/charmbracelet/log"

	"github.com/sverrirab/gitwrap/internal/shellexec"
)

// Runner executes a command string in the WSL shell.
// *shellexec.Invoker implements it.
type Runner interface {
	Run(fragments ...string) shellexec.Result
}

// Converter translates paths using wslpath.
type Converter struct {
	run    Runner
	logger *log.Logger
}

// NewConverter creates a converter that issues wslpath queries through run.
func NewConverter(run Runner, logger *log.Logger) *Converter {
	return &Converter{run: run, logger: logger}
}

// ToLinux converts a Windows path to WSL form.
func (c *Converter) ToLinux(winPath string) (string, error) {
	return c.wslpath(toLinux, winPath)
}

// ToWindows converts a WSL path to Windows form.
func (c *Converter) ToWindows(linuxPath string) (string, error) {
	return c.wslpath(toWindows, linuxPath)
}

// ToLinuxOrKeep converts winPath, returning it unchanged if conversion fails.
func (c *Converter) ToLinuxOrKeep(winPath string) string {
	p, err := c.ToLinux(winPath)
	if err != nil {
		c.logger.Debug("keeping untranslated argument", "arg", winPath, "err", err)
		return winPath
	}
	return p
}

// ToWindowsOrKeep converts linuxPath, returning fallback if conversion fails.
func (c *Converter) ToWindowsOrKeep(linuxPath, fallback string) string {
	p, err := c.ToWindows(linuxPath)
	if err != nil {
		c.logger.Debug("keeping untranslated output", "path", linuxPath, "err", err)
		return fallback
	}
	return p
}
