package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print methods (default to stderr, debug output never mixes with dumps on stdout)
func (c COLOR) Printf(format string, args ...any) {
	c.Fprintf(os.Stderr, format, args...)
}

func (c COLOR) Println(args ...any) {
	c.Fprintln(os.Stderr, args...)
}

func (c COLOR) Print(args ...any) {
	c.Fprint(os.Stderr, args...)
}

// Fprint methods (write to specific writer)
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, c.wrap(fmt.Sprintf(format, args...)))
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, c.wrap(strings.TrimSuffix(fmt.Sprintln(args...), "\n")))
	fmt.Fprintln(w)
}

func (c COLOR) Fprint(w io.Writer, args ...any) {
	fmt.Fprint(w, c.wrap(fmt.Sprint(args...)))
}

func (c COLOR) Sprintf(format string, args ...any) string {
	return c.wrap(fmt.Sprintf(format, args...))
}

func (c COLOR) Sprint(args ...any) string {
	return c.wrap(fmt.Sprint(args...))
}

// StripANSI removes ANSI color codes from a string
func StripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			i++
			continue
		}
		if inEscape {
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
