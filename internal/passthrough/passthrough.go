// Package passthrough decides which git subcommands have their output written
// verbatim, without path translation. Reconciling output costs one shell
// spawn per candidate token, which is slow for commands like "log" that print
// thousands of lines.
//
// An empty list translates everything.
package passthrough

import "strings"

// valueOptions are git global options that take their value as the next
// argument rather than after "=".
var valueOptions = map[string]bool{
	"-C":           true,
	"-c":           true,
	"--git-dir":    true,
	"--work-tree":  true,
	"--namespace":  true,
	"--config-env": true,
}

// List holds the configured passthrough subcommands.
type List struct {
	commands []string
}

// New creates a List. Matching is case-insensitive.
func New(commands []string) *List {
	return &List{commands: commands}
}

// Skip reports whether the subcommand in args is on the list.
func (l *List) Skip(args []string) bool {
	if len(l.commands) == 0 {
		return false
	}
	sub := Subcommand(args)
	if sub == "" {
		return false
	}
	for _, c := range l.commands {
		if strings.EqualFold(sub, c) {
			return true
		}
	}
	return false
}

// Subcommand returns the first positional argument, skipping global options
// and the values of options that take one (e.g. "-C dir").
func Subcommand(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
		if valueOptions[arg] {
			i++ // skip the option's value
		}
	}
	return ""
}
