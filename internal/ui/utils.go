package ui

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive checks if stdout is a terminal.
// Styled output is only enabled for terminals so that piped output stays plain.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
