// Package style centralizes the terminal styles used by the gcd CLI.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Err marks failure diagnostics on stderr.
var Err = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// Enabled reports whether stderr is a terminal. Styling applies only
// when a human is watching; piped output stays plain.
func Enabled() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// Render applies s to text when Enabled, and returns text unchanged
// otherwise.
func Render(s lipgloss.Style, text string) string {
	if !Enabled() {
		return text
	}
	return s.Render(text)
}
