package tui

import "github.com/charmbracelet/lipgloss"

// Default column width - recalculated from the terminal width.
const defaultColWidth = 20

// Lines shown per cell; extra stacked records are summarized.
const cellLines = 3

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	Header     lipgloss.Style
	TimeColumn lipgloss.Style
	Cell       lipgloss.Style
	CursorCell lipgloss.Style
	Name       lipgloss.Style
	Muted      lipgloss.Style
	Status     lipgloss.Style
	Help       lipgloss.Style
	Prompt     lipgloss.Style
}

func defaultStyles() Styles {
	border := lipgloss.NormalBorder()

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
		TimeColumn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Border(border, false, false, false, true).
			Padding(0, 1),
		CursorCell: lipgloss.NewStyle().
			Border(border, false, false, false, true).
			Padding(0, 1).
			Reverse(true),
		Name: lipgloss.NewStyle().
			Bold(true),
		Muted: lipgloss.NewStyle().
			Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")),
		Help: lipgloss.NewStyle().
			Faint(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")),
	}
}

// columnHeaderStyle tints a CK header with its deterministic grid color.
func (s Styles) columnHeaderStyle(hex string) lipgloss.Style {
	return s.Header.Foreground(lipgloss.Color(hex))
}
