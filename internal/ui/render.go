package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/tsujimura/ckgrid/internal/grid"
	"github.com/tsujimura/ckgrid/internal/timeline"
)

const timeHeader = "TIME/CK"

// RenderGrid renders the projected matrix as a text table. Cells with
// several display records stack them on separate lines.
func RenderGrid(g *grid.Grid) string {
	// Raw (uncolored) lines per cell, used for width math. Display widths
	// are ANSI- and wide-rune-aware so Japanese names line up.
	widths := make([]int, len(g.Columns)+1)
	widths[0] = ansi.StringWidth(timeHeader)
	for i, column := range g.Columns {
		widths[i+1] = ansi.StringWidth(column)
	}

	cellLines := make(map[grid.CellKey][]string)
	for _, slot := range g.Slots {
		for i, column := range g.Columns {
			var lines []string
			for _, cell := range g.At(slot, column) {
				line := fmt.Sprintf("%s %s〜%s", cell.Name, cell.Start, cell.End)
				if cell.Option != "" {
					line += " " + cell.Option
				}
				lines = append(lines, line)
				if w := ansi.StringWidth(line); w > widths[i+1] {
					widths[i+1] = w
				}
			}
			cellLines[grid.CellKey{Slot: slot, Column: column}] = lines
		}
	}

	var b strings.Builder

	// Header
	cells := make([]string, 0, len(g.Columns)+1)
	cells = append(cells, padRight(timeHeader, widths[0]))
	for i, column := range g.Columns {
		cells = append(cells, padRight(column, widths[i+1]))
	}
	b.WriteString(formatHeader(strings.Join(cells, " │ ")))
	b.WriteByte('\n')
	b.WriteString(rule(widths))
	b.WriteByte('\n')

	// One block of lines per slot row
	for _, slot := range g.Slots {
		height := 1
		for _, column := range g.Columns {
			if n := len(cellLines[grid.CellKey{Slot: slot, Column: column}]); n > height {
				height = n
			}
		}

		for line := 0; line < height; line++ {
			cells = cells[:0]
			label := ""
			if line == 0 {
				label = slot
			}
			cells = append(cells, formatSlot(padRight(label, widths[0])))

			for i, column := range g.Columns {
				lines := cellLines[grid.CellKey{Slot: slot, Column: column}]
				content := ""
				if line < len(lines) {
					content = lines[line]
				}
				cells = append(cells, padRight(content, widths[i+1]))
			}
			b.WriteString(strings.Join(cells, " │ "))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// RenderTimeline renders the numeric spans as per-column hour bars between
// startHour and endHour, colored with the deterministic column colors.
func RenderTimeline(spans []timeline.Span, colors map[string]timeline.Color, startHour, endHour int) string {
	const cellsPerHour = 4 // quarter-hour resolution

	if endHour <= startHour {
		return ""
	}

	labelWidth := ansi.StringWidth(timeHeader)
	for _, s := range spans {
		if w := ansi.StringWidth(s.Column); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder

	// Hour axis
	b.WriteString(padRight("", labelWidth))
	for h := startHour; h < endHour; h++ {
		b.WriteString(padRight(fmt.Sprintf("%02d", h), cellsPerHour))
	}
	b.WriteByte('\n')

	profile := termenv.ColorProfile()
	for _, span := range spans {
		b.WriteString(padRight(span.Column, labelWidth))

		start := clamp(span.Start, float64(startHour), float64(endHour))
		end := clamp(span.End, float64(startHour), float64(endHour))
		offset := int(math.Round((start - float64(startHour)) * cellsPerHour))
		length := int(math.Round((end - start) * cellsPerHour))

		b.WriteString(strings.Repeat(" ", offset))
		if length > 0 {
			bar := termenv.String(strings.Repeat("█", length)).
				Foreground(profile.Color(colors[span.Column].Hex()))
			b.WriteString(bar.String())
		}
		b.WriteString(fmt.Sprintf("  %s\n", formatMuted(fmt.Sprintf("%.2f-%.2f", span.Start, span.End))))
	}

	return b.String()
}

func rule(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return formatMuted(strings.Join(parts, "─┼─"))
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
