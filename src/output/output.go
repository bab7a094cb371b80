package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	fgGreen   = color.FgGreen
	fgRed     = color.FgRed
	fgYellow  = color.FgYellow
	fgHiBlack = color.FgHiBlack
)

// paint applies attrs to text when enabled. The caller decides whether
// colour is wanted, so fatih/color's own tty detection is overridden.
func paint(text string, enabled bool, attrs ...color.Attribute) string {
	if !enabled {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// Bold returns text in bold if color is enabled.
func Bold(text string, enabled bool) string {
	return paint(text, enabled, color.Bold)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal(os.Stdout) || IsCI()
}

// Interactive reports whether both stdin and stdout are terminals, which
// the form front-end needs.
func Interactive() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}
