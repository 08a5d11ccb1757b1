package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: slugs, paths, directories.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "create" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "replace" file status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" file status.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for tree chrome and descriptions.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (slugs, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleMuted styles secondary text such as file descriptions.
	StyleMuted = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleBold styles headings.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// File status constants.
const (
	StatusCreate  = "create"
	StatusReplace = "replace"
	StatusSkip    = "skip"
	StatusFailed  = "failed"
)

// StatusStyle returns the lipgloss style for a file status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreate:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusReplace:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusSkip:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minFileColumnWidth keeps status words aligned across lines.
const minFileColumnWidth = 40

// FormatFileLine renders a file path with a right-aligned, color-coded status.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minFileColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") + StyleNoun.Render(path) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatSuccess renders a WP-CLI style "Success:" line.
func FormatSuccess(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorGreen).Render("Success:") + " " + msg
}
