package cli

import "github.com/charmbracelet/lipgloss"

// Shared palette for console output and the TUI viewer. The accents match
// the cell fill colors in the rendered images so console summaries and
// plots read as one tool.
var (
	AccentBlue  = lipgloss.Color("#1F77B4") // movable cells
	AccentRed   = lipgloss.Color("#D62728") // fixed cells
	AccentGreen = lipgloss.Color("#2E8B57")
	AccentGold  = lipgloss.Color("#B8860B")
	MutedGray   = lipgloss.Color("#888888")
	TextWhite   = lipgloss.Color("#FFFFFF")
)
