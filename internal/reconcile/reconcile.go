// Package reconcile rewrites WSL paths found in a tool's text output into
// Windows form.
//
// A line is split on NUL into segments, since tools use NUL to separate
// fields that may contain spaces. A segment that matches the filesystem as a
// whole is one path. Otherwise it is split on spaces and, from each token,
// the run of tokens is extended one token at a time while the joined text
// still matches. The longest matching run wins and its tokens are consumed.
// Text that never matches is emitted unchanged.
package reconcile

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Matcher reports the filesystem entries whose names start with candidate.
type Matcher interface {
	Match(candidate string) ([]string, bool)
}

// Translator converts a WSL path to Windows form, returning fallback when
// it cannot.
type Translator interface {
	ToWindowsOrKeep(linuxPath, fallback string) string
}

// Reconciler rewrites output lines.
type Reconciler struct {
	match  Matcher
	conv   Translator
	logger *log.Logger
}

// New creates a Reconciler.
func New(match Matcher, conv Translator, logger *log.Logger) *Reconciler {
	return &Reconciler{match: match, conv: conv, logger: logger}
}

// Line returns line with every recognised WSL path replaced by its Windows
// form. NULs and single spaces between fields are preserved.
func (r *Reconciler) Line(line string) string {
	segments := strings.Split(line, "\x00")
	for i, seg := range segments {
		segments[i] = r.segment(seg)
	}
	return strings.Join(segments, "\x00")
}

func (r *Reconciler) segment(seg string) string {
	if matches, ok := r.match.Match(seg); ok {
		return r.conv.ToWindowsOrKeep(matches[0], seg)
	}

	tokens := strings.Split(seg, " ")
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		n := r.longestRun(tokens[i:])
		if n == 0 {
			out = append(out, tokens[i])
			i++
			continue
		}
		run := strings.Join(tokens[i:i+n], " ")
		if n > 1 {
			r.logger.Debug("joined tokens into one path", "path", run, "tokens", n)
		}
		out = append(out, r.conv.ToWindowsOrKeep(run, run))
		i += n
	}
	return strings.Join(out, " ")
}

// longestRun returns the number of leading tokens whose space-joined text
// matches, extending until the first extension that does not. It returns 0
// if the first token alone does not match.
func (r *Reconciler) longestRun(tokens []string) int {
	n := 0
	var candidate strings.Builder
	for k, tok := range tokens {
		if k > 0 {
			candidate.WriteByte(' ')
		}
		candidate.WriteString(tok)
		if _, ok := r.match.Match(candidate.String()); !ok {
			break
		}
		n = k + 1
	}
	return n
}
