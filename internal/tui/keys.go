package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tsujimura/ckgrid/internal/schedule"
)

const statusTimeout = 3 * time.Second

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case documentLoadedMsg:
		m.loading = false
		m.store = schedule.NewStore(msg.clinics)
		m.clinic = m.store.Active()
		m.refresh()
		return m, nil

	case saveResultMsg:
		if m.store != nil {
			m.store.RecordSave(msg.err)
		}
		if msg.err != nil {
			return m.setStatus(fmt.Sprintf("save failed: %v", msg.err))
		}
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.mode == modePrompt {
			return m.updatePrompt(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursorSlot > 0 {
			m.cursorSlot--
		}
	case "down", "j":
		if m.grid != nil && m.cursorSlot < len(m.grid.Slots)-1 {
			m.cursorSlot++
		}
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right", "l":
		if m.grid != nil && m.cursorCol < len(m.grid.Columns)-1 {
			m.cursorCol++
		}

	case "tab":
		return m.nextClinic()

	case "enter":
		return m.startEdit()

	case "a":
		return m.startPrompt(promptAddCK, "New CK name", "")

	case "A":
		return m.startPrompt(promptCustomerName, "Customer name", "")

	case "d":
		_, column, _ := m.cursorCell()
		return m.startPrompt(promptRemoveCK, "Remove CK", column)

	case "D":
		return m.startPrompt(promptRemoveCustomer, "Remove customer", "")

	case "y":
		return m.copyCell()

	case "s":
		if m.store != nil {
			return m, saveDocument(m.repo, m.store.Clinics())
		}
	}

	return m, nil
}

// startEdit begins the three-step cell edit flow, wording and order
// matching the save prompts: patient, end time, option.
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	slot, column, cells := m.cursorCell()
	if slot == "" {
		return m, nil
	}

	m.pending = schedule.Edit{Slot: slot, Column: column}
	defaultName := ""
	if len(cells) > 0 {
		defaultName = cells[0].Name
	}
	return m.startPrompt(promptEditPatient, "Patient to edit", defaultName)
}

// startPrompt switches into prompt mode for the given kind.
func (m Model) startPrompt(kind promptKind, label, value string) (tea.Model, tea.Cmd) {
	m.mode = modePrompt
	m.prompt = kind
	m.input.Prompt = label + ": "
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// closePrompt leaves prompt mode.
func (m *Model) closePrompt() {
	m.mode = modeNormal
	m.prompt = promptNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		// Declining any step aborts the whole flow silently.
		m.closePrompt()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		return m.advancePrompt(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// advancePrompt stashes the entered value and moves to the next step of the
// current flow, committing on the final step.
func (m Model) advancePrompt(value string) (tea.Model, tea.Cmd) {
	switch m.prompt {
	case promptEditPatient:
		if value == "" {
			m.closePrompt()
			return m, nil
		}
		m.pending.Patient = value
		return m.startPrompt(promptEditEnd, "End time", "11:00")

	case promptEditEnd:
		if value == "" {
			m.closePrompt()
			return m, nil
		}
		m.pending.End = value
		return m.startPrompt(promptEditOption, "CK option", "")

	case promptEditOption:
		m.pending.Option = value
		m.closePrompt()
		return m.applyEdit()

	case promptAddCK:
		m.closePrompt()
		if value == "" {
			return m, nil
		}
		return m.mutate(func(c *schedule.Clinic) error { return c.AddColumn(value) })

	case promptCustomerName:
		if value == "" {
			m.closePrompt()
			return m, nil
		}
		m.customer = pendingCustomer{name: value}
		hint := ""
		if m.grid != nil {
			hint = strings.Join(m.grid.Columns, ", ")
		}
		return m.startPrompt(promptCustomerCK, "CK ("+hint+")", "")

	case promptCustomerCK:
		if value == "" {
			m.closePrompt()
			return m, nil
		}
		m.customer.ck = value
		return m.startPrompt(promptCustomerStart, "Start time", "09:00")

	case promptCustomerStart:
		if value == "" {
			m.closePrompt()
			return m, nil
		}
		m.customer.start = value
		return m.startPrompt(promptCustomerEnd, "End time", "11:00")

	case promptCustomerEnd:
		m.closePrompt()
		if value == "" {
			return m, nil
		}
		cust := m.customer
		return m.mutate(func(c *schedule.Clinic) error {
			return c.AddPatient(cust.name, cust.ck, cust.start, value)
		})

	case promptRemoveCK:
		m.closePrompt()
		if value == "" {
			return m, nil
		}
		return m.mutate(func(c *schedule.Clinic) error { return c.RemoveColumn(value) })

	case promptRemoveCustomer:
		m.closePrompt()
		if value == "" {
			return m, nil
		}
		return m.mutate(func(c *schedule.Clinic) error { return c.RemovePatient(value) })
	}

	m.closePrompt()
	return m, nil
}

// applyEdit commits the collected edit, re-projects, and kicks off a
// fire-and-forget save.
func (m Model) applyEdit() (tea.Model, tea.Cmd) {
	if m.clinic == nil {
		return m, nil
	}
	if err := m.clinic.ApplyEdit(m.pending); err != nil {
		if errors.Is(err, schedule.ErrNoPatientName) {
			return m, nil
		}
		return m.setStatus(err.Error())
	}
	m.refresh()
	return m, saveDocument(m.repo, m.store.Clinics())
}

// mutate applies a clinic mutation, re-projects, and saves in background.
func (m Model) mutate(fn func(*schedule.Clinic) error) (tea.Model, tea.Cmd) {
	if m.clinic == nil {
		return m, nil
	}
	if err := fn(m.clinic); err != nil {
		return m.setStatus(err.Error())
	}
	m.refresh()
	return m, saveDocument(m.repo, m.store.Clinics())
}

// nextClinic cycles the active clinic.
func (m Model) nextClinic() (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	clinics := m.store.Clinics()
	if len(clinics) < 2 || m.clinic == nil {
		return m, nil
	}
	for i, c := range clinics {
		if c == m.clinic {
			next := clinics[(i+1)%len(clinics)]
			if _, err := m.store.SelectClinic(next.Name); err != nil {
				return m.setStatus(err.Error())
			}
			m.clinic = next
			m.cursorSlot, m.cursorCol = 0, 0
			m.refresh()
			break
		}
	}
	return m, nil
}

// copyCell puts the cursor cell's records on the clipboard.
func (m Model) copyCell() (tea.Model, tea.Cmd) {
	slot, column, cells := m.cursorCell()
	if slot == "" || len(cells) == 0 {
		return m, nil
	}
	lines := make([]string, 0, len(cells)+1)
	lines = append(lines, fmt.Sprintf("%s %s", slot, column))
	for _, c := range cells {
		line := fmt.Sprintf("%s %s〜%s", c.Name, c.Start, c.End)
		if c.Option != "" {
			line += " " + c.Option
		}
		lines = append(lines, line)
	}
	if err := clipboard.WriteAll(strings.Join(lines, "\n")); err != nil {
		return m.setStatus(fmt.Sprintf("copy failed: %v", err))
	}
	return m.setStatus("copied cell")
}

func (m Model) setStatus(s string) (tea.Model, tea.Cmd) {
	m.status = s
	return m, clearStatusAfter(statusTimeout)
}
