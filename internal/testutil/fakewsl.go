// Package testutil provides a scripted stand-in for the WSL shell.
package testutil

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sverrirab/gitwrap/internal/shellexec"
)

// FakeWSL answers the helper queries gitwrap issues (ls -QAd, wslpath -u,
// wslpath -w) from in-memory tables and records every spawned command.
type FakeWSL struct {
	// Entries are the names present in the fake Linux filesystem.
	Entries []string
	// Windows maps Linux paths to their Windows form.
	Windows map[string]string
	// Linux maps Windows paths to their Linux form.
	Linux map[string]string
	// ListStatus forces the ls exit status for a candidate.
	ListStatus map[string]int
	// Main handles any other command, i.e. the wrapped tool itself.
	Main func(command string) shellexec.Result
	// Missing simulates an absent shell binary: nothing is spawned.
	Missing bool

	Calls []string
	// Stdin holds what RunWithStdin read for the last command.
	Stdin string
}

// Run implements pathconv.Runner.
func (f *FakeWSL) Run(fragments ...string) shellexec.Result {
	if f.Missing {
		return shellexec.Result{
			ExitCode: -1,
			Lines:    []string{"[-] Error: bash.exe not found."},
			Err:      fmt.Errorf("%w: bash.exe", shellexec.ErrShellNotFound),
		}
	}

	command := strings.Join(fragments, " ")
	f.Calls = append(f.Calls, command)

	switch {
	case strings.HasPrefix(command, listPrefix) && strings.HasSuffix(command, "*"):
		return f.list(listCandidate(command))
	case strings.HasPrefix(command, "wslpath -w "):
		return convert(f.Windows, unquote(strings.TrimPrefix(command, "wslpath -w ")))
	case strings.HasPrefix(command, "wslpath -u "):
		return convert(f.Linux, unquote(strings.TrimPrefix(command, "wslpath -u ")))
	case f.Main != nil:
		return f.Main(command)
	}
	return shellexec.Result{}
}

// RunWithStdin reads r into Stdin, then behaves like Run.
func (f *FakeWSL) RunWithStdin(r io.Reader, fragments ...string) shellexec.Result {
	if r != nil && !f.Missing {
		data, err := io.ReadAll(r)
		if err != nil {
			return shellexec.Result{ExitCode: -1, Err: err}
		}
		f.Stdin = string(data)
	}
	return f.Run(fragments...)
}

// Spawns returns the number of commands run.
func (f *FakeWSL) Spawns() int {
	return len(f.Calls)
}

// ListCalls returns the candidates passed to ls, in order.
func (f *FakeWSL) ListCalls() []string {
	var out []string
	for _, c := range f.Calls {
		if strings.HasPrefix(c, listPrefix) {
			out = append(out, listCandidate(c))
		}
	}
	return out
}

func (f *FakeWSL) list(prefix string) shellexec.Result {
	if code, ok := f.ListStatus[prefix]; ok {
		return shellexec.Result{ExitCode: code}
	}
	entries := append([]string(nil), f.Entries...)
	sort.Strings(entries)

	var lines []string
	for _, e := range entries {
		if strings.HasPrefix(e, prefix) {
			lines = append(lines, `"`+e+`"`)
		}
	}
	if len(lines) == 0 {
		return shellexec.Result{
			ExitCode: 2,
			Lines:    []string{fmt.Sprintf("ls: cannot access '%s*': No such file or directory", prefix)},
		}
	}
	return shellexec.Result{Lines: lines}
}

func convert(table map[string]string, path string) shellexec.Result {
	if out, ok := table[path]; ok {
		return shellexec.Result{Lines: []string{out}}
	}
	return shellexec.Result{
		ExitCode: 1,
		Lines:    []string{fmt.Sprintf("wslpath: %s: No such file or directory", path)},
	}
}

const listPrefix = "ls -QAd -- "

func listCandidate(command string) string {
	return unquote(strings.TrimSuffix(strings.TrimPrefix(command, listPrefix), "*"))
}

// unquote reverses protocol.Quote.
func unquote(s string) string {
	s = strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
