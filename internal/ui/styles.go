package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray

	// Base Styles
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	// Listing
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
	StyleIndex = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleDate  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleEmpty = lipgloss.NewStyle().Foreground(ColorWarning)
)

// IconDone marks a confirmed change.
const IconDone = "✓"

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
