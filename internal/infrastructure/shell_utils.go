package infrastructure

import "strings"

// shellSpecial holds the characters that force quoting for display.
const shellSpecial = " \t'\"$`\\!*?[](){}|;<>&~#%\n\r"

// ShellEscape escapes a string for safe display in a shell command line.
// exec.Command does not need this; it exists so logged invocations can be
// copy-pasted into a terminal.
func ShellEscape(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, shellSpecial) {
		return s
	}

	// Single-quote the whole string; an embedded single quote becomes
	// '"'"' (close quote, quoted quote, reopen quote).
	var b strings.Builder
	b.WriteByte('\'')
	for _, c := range s {
		if c == '\'' {
			b.WriteString(`'"'"'`)
		} else {
			b.WriteRune(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// ShellEscapeCommand renders a binary and its arguments as one shell-safe
// command line for logging.
func ShellEscapeCommand(binary string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, ShellEscape(binary))
	for _, arg := range args {
		parts = append(parts, ShellEscape(arg))
	}
	return strings.Join(parts, " ")
}
