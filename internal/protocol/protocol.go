// Package protocol defines the shell command strings sent to the WSL helper
// utilities (wslpath, ls) and parses what they print back.
package protocol

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Quote wraps s in double quotes for bash, escaping the characters that stay
// special inside double quotes so the shell sees s literally.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\', '"', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteArg quotes a forwarded command-line argument so bash passes it to the
// wrapped tool as one word. Arguments that cannot be quoted (e.g. containing
// a NUL byte) are returned unchanged.
func QuoteArg(arg string) string {
	q, err := syntax.Quote(arg, syntax.LangBash)
	if err != nil {
		return arg
	}
	return q
}

// ToLinuxCommand converts a Windows path to its WSL form.
func ToLinuxCommand(winPath string) string {
	return "wslpath -u " + Quote(winPath)
}

// ToWindowsCommand converts a WSL path to its Windows form.
func ToWindowsCommand(linuxPath string) string {
	return "wslpath -w " + Quote(linuxPath)
}

// ListCommand lists every entry whose name starts with prefix, one quoted
// name per line (-Q), including dotfiles (-A) and directories themselves (-d).
// "--" keeps a prefix starting with "-" from being read as options.
func ListCommand(prefix string) string {
	return "ls -QAd -- " + Quote(prefix) + "*"
}

// ParseConverted returns the converted path printed by wslpath, or "" if
// there is none.
func ParseConverted(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

// ParseListing extracts entry names from ls -Q output: each line is split on
// the quote character and blank pieces are discarded.
func ParseListing(lines []string) []string {
	var entries []string
	for _, line := range lines {
		for _, piece := range strings.Split(line, `"`) {
			if strings.TrimSpace(piece) != "" {
				entries = append(entries, piece)
			}
		}
	}
	return entries
}
