// Package grid projects a clinic's schedule onto a time-slot × CK matrix.
package grid

import "github.com/tsujimura/ckgrid/internal/schedule"

// CellKey addresses one cell of the projected matrix.
type CellKey struct {
	Slot   string
	Column string
}

// Cell is one display record inside a cell. A cell holds zero, one, or many
// records; multiple records render stacked.
type Cell struct {
	Name   string
	Start  string
	End    string
	Option string
}

// Grid is the projected matrix plus the ordered headers needed to render
// it. It is plain data: a rendering layer consumes it, the projector never
// draws anything.
type Grid struct {
	Slots   []string
	Columns []string
	Cells   map[CellKey][]Cell
}

// Project builds the (slot, column) matrix for a clinic. Column order is
// the first-seen order of CK values among the clinic's patients. An entry
// lands in a cell only when its start label equals the slot label exactly;
// entries with non-hour-aligned starts match no cell and stay invisible in
// the grid. The projection is pure and safe to recompute on every render.
func Project(c *schedule.Clinic, slots []string) *Grid {
	g := &Grid{
		Slots:   slots,
		Columns: c.Columns(),
		Cells:   make(map[CellKey][]Cell),
	}

	byColumn := c.PatientsByColumn()
	for _, slot := range slots {
		for _, column := range g.Columns {
			for _, p := range byColumn[column] {
				for _, entry := range p.Schedule {
					if entry.Start != slot {
						continue
					}
					key := CellKey{Slot: slot, Column: column}
					g.Cells[key] = append(g.Cells[key], Cell{
						Name:   p.Name,
						Start:  entry.Start,
						End:    entry.End,
						Option: p.Option(),
					})
				}
			}
		}
	}
	return g
}

// At returns the display records for one cell, nil when the cell is empty.
func (g *Grid) At(slot, column string) []Cell {
	return g.Cells[CellKey{Slot: slot, Column: column}]
}
