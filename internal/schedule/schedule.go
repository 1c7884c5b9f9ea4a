// Package schedule defines the core domain types for ckgrid.
package schedule

import (
	"errors"
	"strconv"
	"strings"
)

// Domain errors.
var (
	ErrClinicNotFound  = errors.New("clinic not found")
	ErrColumnNotFound  = errors.New("column not found")
	ErrDuplicateColumn = errors.New("column already exists")
	ErrInvalidColumn   = errors.New("column does not exist")
	ErrPatientNotFound = errors.New("patient not found")

	// ErrNoPatientName signals a declined edit. Callers treat it as a
	// silent abort, not a failure.
	ErrNoPatientName = errors.New("no patient name supplied")
)

// Clinic is a named scheduling context. Patients keep insertion order;
// the order carries no meaning but is preserved for display stability.
type Clinic struct {
	Name     string     `json:"Clinic"`
	Patients []*Patient `json:"patients"`
}

// Patient is a schedule participant. A patient with an empty name and an
// empty schedule is a placeholder that exists solely to introduce a CK
// column into the grid.
type Patient struct {
	Name     string          `json:"Patient"`
	CK       string          `json:"CK"`
	Schedule []ScheduleEntry `json:"schedule"`
	Options  []Option        `json:"options"`
}

// ScheduleEntry is one start/end time pair in "HH:MM" form. Slot binning
// uses only the hour; minutes matter only for the timeline math.
type ScheduleEntry struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Option carries the free-text annotation attached by the most recent edit.
type Option struct {
	CKOption1 string `json:"CK_option1"`
}

// Option returns the patient's annotation text, or "" when none is set.
func (p *Patient) Option() string {
	if len(p.Options) == 0 {
		return ""
	}
	return p.Options[0].CKOption1
}

// Columns returns the distinct CK values across the clinic's patients in
// first-seen order, including placeholder-only columns.
func (c *Clinic) Columns() []string {
	seen := make(map[string]bool, len(c.Patients))
	columns := make([]string, 0, len(c.Patients))
	for _, p := range c.Patients {
		if !seen[p.CK] {
			seen[p.CK] = true
			columns = append(columns, p.CK)
		}
	}
	return columns
}

// PatientsByColumn groups the clinic's patients by CK, preserving patient
// order within each column.
func (c *Clinic) PatientsByColumn() map[string][]*Patient {
	byColumn := make(map[string][]*Patient, len(c.Patients))
	for _, p := range c.Patients {
		byColumn[p.CK] = append(byColumn[p.CK], p)
	}
	return byColumn
}

// HasColumn returns true if any patient carries the given CK.
func (c *Clinic) HasColumn(ck string) bool {
	for _, p := range c.Patients {
		if p.CK == ck {
			return true
		}
	}
	return false
}

// AddColumn introduces a new CK column by appending a placeholder patient.
// Returns ErrDuplicateColumn if the column already exists.
func (c *Clinic) AddColumn(ck string) error {
	if c.HasColumn(ck) {
		return ErrDuplicateColumn
	}
	c.Patients = append(c.Patients, &Patient{
		Name:     "",
		CK:       ck,
		Schedule: []ScheduleEntry{},
		Options:  []Option{{}},
	})
	return nil
}

// RemoveColumn removes every patient carrying the given CK, placeholder and
// customers alike. Returns ErrColumnNotFound if no patient carries it.
func (c *Clinic) RemoveColumn(ck string) error {
	if !c.HasColumn(ck) {
		return ErrColumnNotFound
	}
	kept := c.Patients[:0]
	for _, p := range c.Patients {
		if p.CK != ck {
			kept = append(kept, p)
		}
	}
	c.Patients = kept
	return nil
}

// AddPatient appends a new patient with a single schedule entry under an
// existing column. Returns ErrInvalidColumn if the column does not exist.
func (c *Clinic) AddPatient(name, ck, start, end string) error {
	if !c.HasColumn(ck) {
		return ErrInvalidColumn
	}
	c.Patients = append(c.Patients, &Patient{
		Name:     name,
		CK:       ck,
		Schedule: []ScheduleEntry{{Start: start, End: end}},
		Options:  []Option{{}},
	})
	return nil
}

// RemovePatient removes the first patient whose display name matches
// exactly. Returns ErrPatientNotFound if there is no match.
func (c *Clinic) RemovePatient(name string) error {
	for i, p := range c.Patients {
		if p.Name == name {
			c.Patients = append(c.Patients[:i], c.Patients[i+1:]...)
			return nil
		}
	}
	return ErrPatientNotFound
}

// clockHour extracts the hour from an "HH:MM" label. Minutes and anything
// past the colon are ignored.
func clockHour(label string) (int, bool) {
	h, _, found := strings.Cut(label, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	return hour, true
}
