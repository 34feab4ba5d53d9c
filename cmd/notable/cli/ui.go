// Package cli provides the themed console output helpers shared by
// all notable commands.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ColorTheme represents a set of styles for console messages
type ColorTheme struct {
	Name        string
	Success     lipgloss.Style
	Error       lipgloss.Style
	Warning     lipgloss.Style
	Info        lipgloss.Style
	Header      lipgloss.Style
	Logo        lipgloss.Style
	Description string
}

// Available themes
var (
	// Default green-on-dark theme
	DefaultTheme = ColorTheme{
		Name:        "default",
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Logo:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Description: "Default theme",
	}

	// Gruvbox theme
	GruvboxTheme = ColorTheme{
		Name:        "gruvbox",
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("142")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("109")),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Logo:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Description: "Warm, earthy color scheme (gruvbox)",
	}
)

// List of all available themes
var AvailableThemes = []ColorTheme{
	DefaultTheme,
	GruvboxTheme,
}

// Current active theme, starts with default
var CurrentTheme = DefaultTheme

// SetTheme sets the current theme by name
func SetTheme(themeName string) bool {
	for _, theme := range AvailableThemes {
		if theme.Name == themeName {
			CurrentTheme = theme
			return true
		}
	}
	return false
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Println(CurrentTheme.Success.Render("✓ " + message))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Println(CurrentTheme.Error.Render("✗ " + message))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println(CurrentTheme.Warning.Render("! " + message))
}

// PrintInfo prints an informational message
func PrintInfo(message string) {
	fmt.Println(CurrentTheme.Info.Render("ℹ " + message))
}

// PrintHeader prints a section header
func PrintHeader(message string) {
	fmt.Println("\n" + CurrentTheme.Header.Render(message))
}

// DrawNotableLogo generates the ASCII art logo for notable.
func DrawNotableLogo() string {
	logo := `
             _        _     _
 _ __   ___ | |_ __ _| |__ | | ___
| '_ \ / _ \| __/ _' | '_ \| |/ _ \
| | | | (_) | || (_| | |_) | |  __/
|_| |_|\___/ \__\__,_|_.__/|_|\___|
`
	return CurrentTheme.Logo.Render(logo)
}
