package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsujimura/ckgrid/internal/schedule"
)

// View renders the grid, the footer, and the prompt line.
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n\npress q to quit\n", m.err)
	}
	if m.loading {
		return "Loading timetable..."
	}
	if m.clinic == nil {
		return "Timetable is empty.\n\npress q to quit\n"
	}

	sections := []string{
		m.renderTitle(),
		m.renderGrid(),
		m.renderFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitle() string {
	title := m.styles.Header.Render(m.clinic.Name)
	save := m.styles.Muted.Render(saveStatusLabel(m.store.LastSaveStatus()))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", save)
}

// saveStatusLabel describes the staleness of the on-disk document.
func saveStatusLabel(s schedule.SaveStatus) string {
	switch s.State {
	case schedule.SaveOK:
		return "saved " + s.At.Format("15:04:05")
	case schedule.SaveFailed:
		return "UNSAVED (last save failed)"
	default:
		return ""
	}
}

func (m Model) renderGrid() string {
	colWidth := m.columnWidth()

	// Header row
	header := []string{m.styles.TimeColumn.Width(8).Render(timeHeaderLabel)}
	for _, column := range m.grid.Columns {
		style := m.styles.Header
		if c, ok := m.colors[column]; ok {
			style = m.styles.columnHeaderStyle(c.Hex())
		}
		header = append(header, style.Width(colWidth).Render(column))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for si, slot := range m.grid.Slots {
		height := 1
		contents := make([][]string, len(m.grid.Columns))
		for ci, column := range m.grid.Columns {
			contents[ci] = m.cellContent(slot, column)
			if len(contents[ci]) > height {
				height = len(contents[ci])
			}
		}

		cells := []string{m.styles.TimeColumn.Width(8).Height(height).Render(slot)}
		for ci := range m.grid.Columns {
			style := m.styles.Cell
			if si == m.cursorSlot && ci == m.cursorCol {
				style = m.styles.CursorCell
			}
			cells = append(cells,
				style.Width(colWidth).Height(height).Render(strings.Join(contents[ci], "\n")))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

const timeHeaderLabel = "TIME/CK"

// cellContent returns the display lines for one cell, capped at cellLines.
func (m Model) cellContent(slot, column string) []string {
	records := m.grid.At(slot, column)
	if len(records) == 0 {
		return []string{""}
	}

	var lines []string
	for i, r := range records {
		if i == cellLines-1 && len(records) > cellLines {
			lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("+%d more", len(records)-i)))
			break
		}
		line := fmt.Sprintf("%s %s〜%s", r.Name, r.Start, r.End)
		if r.Option != "" {
			line += " " + r.Option
		}
		lines = append(lines, line)
	}
	return lines
}

func (m Model) renderFooter() string {
	if m.mode == modePrompt {
		return m.styles.Prompt.Render(m.input.View())
	}

	help := "↑↓←→ move · enter edit · a add CK · A add customer · d remove CK · D remove customer · tab clinic · y copy · s save · q quit"
	parts := []string{m.styles.Help.Render(help)}
	if m.status != "" {
		parts = append(parts, m.styles.Status.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// columnWidth spreads the columns across the terminal width.
func (m Model) columnWidth() int {
	if m.grid == nil || len(m.grid.Columns) == 0 {
		return defaultColWidth
	}
	available := m.width - 8 // time column
	if available <= 0 {
		return defaultColWidth
	}
	w := available / len(m.grid.Columns)
	if w < 12 {
		return 12
	}
	if w > 2*defaultColWidth {
		return 2 * defaultColWidth
	}
	return w
}
