// Package launch orchestrates one gitwrap invocation: translate host paths in
// the arguments, run the wrapped command in WSL, translate WSL paths in its
// output, and return its exit code.
package launch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/sverrirab/gitwrap/internal/config"
	"github.com/sverrirab/gitwrap/internal/matchcache"
	"github.com/sverrirab/gitwrap/internal/passthrough"
	"github.com/sverrirab/gitwrap/internal/pathconv"
	"github.com/sverrirab/gitwrap/internal/protocol"
	"github.com/sverrirab/gitwrap/internal/reconcile"
	"github.com/sverrirab/gitwrap/internal/shellexec"
)

// Options holds everything one invocation needs.
type Options struct {
	// Args are forwarded to the wrapped command, after path translation.
	Args   []string
	Config *config.Config
	Runner pathconv.Runner
	Stdout io.Writer
	Logger *log.Logger
	// Stdin is handed to the wrapped command, e.g. for "git cat-file --batch".
	// Helper queries never see it. Nil means the null device.
	Stdin io.Reader

	// HostExists reports whether a path names an existing file or directory
	// on the host. Defaults to os.Stat.
	HostExists func(path string) bool
}

// StdinRunner is a Runner that can feed the command's stdin.
// *shellexec.Invoker implements it.
type StdinRunner interface {
	RunWithStdin(r io.Reader, fragments ...string) shellexec.Result
}

// Result holds the outcome of an invocation.
type Result struct {
	ExitCode int
	// Lines is the number of output lines written.
	Lines int
}

// Run executes the full workflow. The only error returned is a failure to
// write to Stdout; everything else is reported through the exit code.
func Run(opts *Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	exists := opts.HostExists
	if exists == nil {
		exists = hostExists
	}

	conv := pathconv.NewConverter(opts.Runner, logger)

	// 1. Translate arguments.
	argv := []string{cfg.Command.Name}
	for _, arg := range opts.Args {
		if cfg.Translate.Args && exists(arg) {
			arg = conv.ToLinuxOrKeep(arg)
		}
		argv = append(argv, protocol.QuoteArg(arg))
	}
	logger.Debug("running", "argv", argv)

	// 2. Run the wrapped command.
	res := dispatch(opts, argv)
	logger.Debug("command finished", "exit", res.ExitCode, "lines", len(res.Lines))
	out := NewWriter(opts.Stdout)

	if errors.Is(res.Err, shellexec.ErrShellNotFound) {
		logger.Debug("host shell missing", "err", res.Err)
		if err := out.WriteLines(res.Lines); err != nil {
			return nil, err
		}
		return &Result{ExitCode: res.ExitCode, Lines: out.Count()}, nil
	}

	// 3. Translate output.
	translate := cfg.Translate.Output
	switch {
	case res.Err != nil:
		logger.Warn("command did not exit cleanly, output left as is", "err", res.Err)
		translate = false
	case translate && passthrough.New(cfg.Passthrough.Commands).Skip(opts.Args):
		logger.Debug("passthrough subcommand", "subcommand", passthrough.Subcommand(opts.Args))
		translate = false
	}

	if !translate {
		if err := out.WriteLines(res.Lines); err != nil {
			return nil, err
		}
		return &Result{ExitCode: res.ExitCode, Lines: out.Count()}, nil
	}

	var cache *matchcache.Cache
	if cfg.Translate.Cache {
		cache = matchcache.New()
	}
	rec := reconcile.New(pathconv.NewMatcher(opts.Runner, cache, logger), conv, logger)
	for _, line := range res.Lines {
		if err := out.WriteLine(rec.Line(line)); err != nil {
			return nil, err
		}
	}
	if cache != nil {
		hits, misses := cache.Stats()
		logger.Debug("existence cache", "hits", hits, "misses", misses)
	}

	return &Result{ExitCode: res.ExitCode, Lines: out.Count()}, nil
}

// dispatch runs the wrapped command, forwarding opts.Stdin when the runner
// supports it.
func dispatch(opts *Options, argv []string) shellexec.Result {
	if opts.Stdin != nil {
		if sr, ok := opts.Runner.(StdinRunner); ok {
			return sr.RunWithStdin(opts.Stdin, argv...)
		}
	}
	return opts.Runner.Run(argv...)
}

func hostExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Writer writes lines separated by the platform newline, with no newline
// after the last one.
type Writer struct {
	w       io.Writer
	newline string
	count   int
}

// NewWriter creates a Writer using the platform newline.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, newline: Newline}
}

// WriteLine writes one line, preceded by a newline unless it is the first.
func (w *Writer) WriteLine(line string) error {
	if w.count > 0 {
		line = w.newline + line
	}
	if _, err := io.WriteString(w.w, line); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	w.count++
	return nil
}

// WriteLines writes each line in order.
func (w *Writer) WriteLines(lines []string) error {
	for _, line := range lines {
		if err := w.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of lines written.
func (w *Writer) Count() int {
	return w.count
}
