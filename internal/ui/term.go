package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Slot labels: cyan, like the time axis of the grid
	colorSlot = color.New(color.FgCyan)

	// Patient names: bold for scanability
	colorName = color.New(color.Bold)

	// Warnings: yellow, used for failed saves
	colorWarning = color.New(color.FgYellow)

	// Muted: for secondary information (options, separators)
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatSlot formats a slot label.
func formatSlot(s string) string {
	return colorSlot.Sprint(s)
}

// formatName formats a patient name.
func formatName(s string) string {
	return colorName.Sprint(s)
}

// formatWarning formats a warning line.
func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
