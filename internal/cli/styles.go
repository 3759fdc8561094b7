package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	// Title style for tool names
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentBlue).
			MarginBottom(1)

	// Subtitle style - muted gray
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(MutedGray).
			Italic(true)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentGreen)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentRed)

	// Highlight style for important values
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentGold)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(MutedGray)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextWhite)
)

// PrintVersion prints version information for a tool
func PrintVersion(name, version string) {
	fmt.Println(TitleStyle.Render(name))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Printf("%s %s\n", HighlightStyle.Render("Warning:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints an informational key-value line
func PrintInfo(key, value string) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}
