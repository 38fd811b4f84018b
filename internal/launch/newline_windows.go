//go:build windows

package launch

// Newline separates output lines.
const Newline = "\r\n"
