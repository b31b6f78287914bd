package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorStarted   = lipgloss.Color("88")  // Dark red for running items
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow

	// Base Styles
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	// Item rendering
	StyleStarted    = lipgloss.NewStyle().Foreground(ColorStarted).Bold(true)
	StyleRecurrence = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleDelimiter  = lipgloss.NewStyle().Foreground(ColorSecondary)
)

// SetColorEnabled switches styled output off (plain text) or back to the
// profile detected from the terminal.
func SetColorEnabled(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
