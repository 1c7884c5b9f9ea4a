// Package timeline derives the flat numeric view of a clinic's schedule
// that feeds the bar-chart collaborator.
package timeline

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tsujimura/ckgrid/internal/schedule"
)

// Fixed saturation and lightness for column colors.
const (
	saturation = 0.70
	lightness  = 0.60
)

// Span is one schedule entry as a numeric range on a column. Start and End
// are fractional hours (hour + minute/60).
type Span struct {
	Column string
	Start  float64
	End    float64
}

// Spans flattens every schedule entry of every patient into numeric spans,
// in patient then entry order.
func Spans(c *schedule.Clinic) []Span {
	var spans []Span
	for _, p := range c.Patients {
		for _, entry := range p.Schedule {
			spans = append(spans, Span{
				Column: p.CK,
				Start:  clockFloat(entry.Start),
				End:    clockFloat(entry.End),
			})
		}
	}
	return spans
}

// Columns returns the distinct span columns in first-seen order. Columns
// without any schedule entry do not appear on the chart.
func Columns(spans []Span) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, s := range spans {
		if !seen[s.Column] {
			seen[s.Column] = true
			columns = append(columns, s.Column)
		}
	}
	return columns
}

// Color is a deterministic column color at fixed saturation and lightness.
type Color struct {
	Hue int // degrees, 0-359
}

// HSL renders the CSS form consumed by the chart collaborator.
func (c Color) HSL() string {
	return fmt.Sprintf("hsl(%d, 70%%, 60%%)", c.Hue)
}

// Hex renders the color as "#rrggbb" for terminal use.
func (c Color) Hex() string {
	return colorful.Hsl(float64(c.Hue), saturation, lightness).Hex()
}

// Colors assigns each column a hue of (index × 60) mod 360 by position in
// the given order. The mapping is stable across renders as long as column
// order is stable; columns more than six apart collide on hue.
func Colors(columns []string) map[string]Color {
	colors := make(map[string]Color, len(columns))
	for i, column := range columns {
		colors[column] = Color{Hue: (i * 60) % 360}
	}
	return colors
}

// clockFloat converts an "HH:MM" label to fractional hours. Malformed
// labels convert to 0; the timeline does not validate time strings.
func clockFloat(label string) float64 {
	h, m, found := strings.Cut(label, ":")
	if !found {
		return 0
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return float64(hour)
	}
	return float64(hour) + float64(minute)/60
}
