// Package shellexec runs commands through the host's WSL shell (bash.exe)
// and captures the combined stdout/stderr text as lines.
// Every call spawns a fresh shell process; nothing is reused between calls.
package shellexec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrShellNotFound is wrapped by Result.Err when the host shell is missing.
var ErrShellNotFound = errors.New("host shell not found")

// Result is the outcome of one shell invocation.
type Result struct {
	// ExitCode is the process exit status, or -1 if the process could not
	// be run or its status could not be read.
	ExitCode int
	// Lines holds every line written to stdout or stderr, in delivery order.
	Lines []string
	// Err is set when ExitCode does not come from a real process exit.
	// It wraps ErrShellNotFound when the shell binary is missing.
	Err error
}

// OK reports whether the process ran and exited with status 0.
func (r Result) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// String renders the result as the exit status followed by the output lines.
func (r Result) String() string {
	parts := append([]string{strconv.Itoa(r.ExitCode)}, r.Lines...)
	return strings.Join(parts, " | ")
}

// Invoker runs command strings through a shell binary with -c.
type Invoker struct {
	shell  string
	spawns int
}

// New returns an Invoker for the shell at the given path. The path is not
// checked here; Run checks it on every call.
func New(shell string) *Invoker {
	return &Invoker{shell: shell}
}

// Shell returns the configured shell path.
func (inv *Invoker) Shell() string {
	return inv.shell
}

// Spawns returns the number of processes started so far.
func (inv *Invoker) Spawns() int {
	return inv.spawns
}

// Run joins fragments with spaces, passes them to the shell as a single -c
// argument and blocks until the process exits. There is no timeout.
// The process reads from the null device.
func (inv *Invoker) Run(fragments ...string) Result {
	return inv.RunWithStdin(nil, fragments...)
}

// RunWithStdin is Run with the process reading stdin from r.
// A nil r means the null device.
func (inv *Invoker) RunWithStdin(r io.Reader, fragments ...string) Result {
	if info, err := os.Stat(inv.shell); err != nil || info.IsDir() {
		return Result{
			ExitCode: -1,
			Lines:    []string{fmt.Sprintf("[-] Error: %s not found.", inv.shell)},
			Err:      fmt.Errorf("%w: %s", ErrShellNotFound, inv.shell),
		}
	}

	cmd := exec.Command(inv.shell, "-c", strings.Join(fragments, " "))
	cmd.Stdin = r
	hideWindow(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return failed(fmt.Errorf("stdout pipe: %w", err))
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return failed(fmt.Errorf("stderr pipe: %w", err))
	}

	if err := cmd.Start(); err != nil {
		return failed(fmt.Errorf("starting %s: %w", inv.shell, err))
	}
	inv.spawns++

	// Both pipes must be drained before Wait closes them.
	var out sink
	var g errgroup.Group
	g.Go(func() error { return out.drain(stdout) })
	g.Go(func() error { return out.drain(stderr) })
	readErr := g.Wait()

	res := Result{ExitCode: 0}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			r := failed(fmt.Errorf("waiting for %s: %w", inv.shell, err))
			r.Lines = out.lines
			return r
		}
		res.ExitCode = exitErr.ExitCode()
	}
	if readErr != nil {
		res.Err = fmt.Errorf("reading output: %w", readErr)
	}
	res.Lines = out.lines
	return res
}

func failed(err error) Result {
	return Result{ExitCode: -1, Err: err}
}

// sink collects lines from both output streams.
type sink struct {
	mu    sync.Mutex
	lines []string
}

func (s *sink) add(line string) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
}

// drain reads r to EOF, adding one entry per line. Lines may contain NUL
// bytes and have no length limit.
func (s *sink) drain(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			s.add(strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
