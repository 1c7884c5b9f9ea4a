// Package tui provides the interactive grid editor for ckgrid.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tsujimura/ckgrid/internal/config"
	"github.com/tsujimura/ckgrid/internal/grid"
	"github.com/tsujimura/ckgrid/internal/schedule"
	"github.com/tsujimura/ckgrid/internal/timeline"
)

// mode represents the current interaction mode.
type mode int

const (
	modeNormal mode = iota
	modePrompt      // collecting a value through the text input
)

// promptKind identifies which value the prompt is collecting. Multi-step
// flows (edit, add customer) chain kinds until the last step commits.
type promptKind int

const (
	promptNone promptKind = iota

	// cell edit: patient name, then end time, then option text
	promptEditPatient
	promptEditEnd
	promptEditOption

	// column and customer management
	promptAddCK
	promptCustomerName
	promptCustomerCK
	promptCustomerStart
	promptCustomerEnd
	promptRemoveCK
	promptRemoveCustomer
)

// pendingCustomer accumulates the add-customer prompt chain.
type pendingCustomer struct {
	name  string
	ck    string
	start string
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   schedule.Repository
	config *config.Config

	// Document state
	store  *schedule.Store
	clinic *schedule.Clinic

	// Projections, recomputed after every mutation
	slots  []string
	grid   *grid.Grid
	colors map[string]timeline.Color

	// Cursor position in the matrix
	cursorSlot int
	cursorCol  int

	// Interaction state
	mode     mode
	prompt   promptKind
	input    textinput.Model
	pending  schedule.Edit // edit being collected across prompt steps
	customer pendingCustomer

	// Transient state
	status  string
	loading bool
	err     error

	// Terminal dimensions
	width  int
	height int

	styles Styles
}

// NewModel creates the initial model. The document loads asynchronously.
func NewModel(repo schedule.Repository, cfg *config.Config) Model {
	input := textinput.New()
	input.CharLimit = 64

	return Model{
		repo:    repo,
		config:  cfg,
		slots:   schedule.SlotLabels(cfg.Schedule.DayStart, cfg.Schedule.DayEnd),
		input:   input,
		loading: true,
		styles:  defaultStyles(),
	}
}

// Run starts the interactive grid editor.
func Run(repo schedule.Repository, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(repo, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init loads the timetable document.
func (m Model) Init() tea.Cmd {
	return loadDocument(m.repo)
}

// refresh recomputes both projections. Projections are pure, so this is
// safe after every mutation and clinic switch.
func (m *Model) refresh() {
	if m.clinic == nil {
		m.grid = nil
		m.colors = nil
		return
	}
	m.grid = grid.Project(m.clinic, m.slots)
	m.colors = timeline.Colors(m.grid.Columns)
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.grid == nil {
		m.cursorSlot, m.cursorCol = 0, 0
		return
	}
	if n := len(m.grid.Slots); m.cursorSlot >= n && n > 0 {
		m.cursorSlot = n - 1
	}
	if n := len(m.grid.Columns); m.cursorCol >= n && n > 0 {
		m.cursorCol = n - 1
	}
	if m.cursorSlot < 0 {
		m.cursorSlot = 0
	}
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
}

// cursorCell returns the slot label, column, and records under the cursor.
func (m Model) cursorCell() (slot, column string, cells []grid.Cell) {
	if m.grid == nil || len(m.grid.Slots) == 0 || len(m.grid.Columns) == 0 {
		return "", "", nil
	}
	slot = m.grid.Slots[m.cursorSlot]
	column = m.grid.Columns[m.cursorCol]
	return slot, column, m.grid.At(slot, column)
}
