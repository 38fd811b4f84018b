// gitwrap is the Windows-side git shim. It runs git inside WSL through
// bash.exe, translating Windows paths in its arguments to WSL paths and WSL
// paths in git's output back to Windows paths.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/sverrirab/gitwrap/internal/config"
	"github.com/sverrirab/gitwrap/internal/hostshell"
	"github.com/sverrirab/gitwrap/internal/launch"
	"github.com/sverrirab/gitwrap/internal/shellexec"
)

func main() {
	cfg, cfgErr := config.Load()
	logger := newLogger(cfg.Log.Level)
	if cfgErr != nil {
		logger.Warn("ignoring config file", "path", config.Path(), "err", cfgErr)
	}

	inv := shellexec.New(hostshell.Locate(cfg.Shell.Path))
	logger.Debug("host shell", "path", inv.Shell())

	// All arguments belong to git; gitwrap has no flags of its own.
	result, err := launch.Run(&launch.Options{
		Args:   os.Args[1:],
		Config: cfg,
		Runner: inv,
		Stdout: os.Stdout,
		Stdin:  os.Stdin,
		Logger: logger,
	})
	if err != nil {
		fatal(err)
	}

	logger.Debug("done", "exit", result.ExitCode, "lines", result.Lines, "spawns", inv.Spawns())
	os.Exit(result.ExitCode)
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "gitwrap",
		Level:  log.WarnLevel,
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level", "level", level)
	}
	return logger
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "gitwrap: %v\n", err)
	os.Exit(1)
}
