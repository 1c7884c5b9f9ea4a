package schedule

// Edit describes a resolved cell-edit interaction: the slot and column of
// the edited cell plus the values supplied by the user. The UI layer builds
// an Edit; the core never blocks waiting on a human.
type Edit struct {
	Slot    string // slot label of the edited cell, "HH:00"
	Column  string // CK of the edited cell
	Patient string // target patient display name; empty means declined
	End     string // new end label
	Option  string // new annotation text, replaces the old one wholesale
}

// ApplyEdit upserts a schedule entry on the named patient within the edited
// column. The entry whose start equals the cell's slot label is replaced
// wholesale; if there is none, a new entry is appended. A patient therefore
// holds at most one entry per distinct start label. The patient's options
// are replaced with a single record carrying the new annotation.
//
// Returns ErrNoPatientName when the edit carries no patient name (a
// declined prompt) and ErrPatientNotFound when no patient in the column
// matches. Neither mutates the clinic.
func (c *Clinic) ApplyEdit(e Edit) error {
	if e.Patient == "" {
		return ErrNoPatientName
	}

	var target *Patient
	for _, p := range c.Patients {
		if p.CK == e.Column && p.Name == e.Patient {
			target = p
			break
		}
	}
	if target == nil {
		return ErrPatientNotFound
	}

	entry := ScheduleEntry{Start: e.Slot, End: e.End}
	replaced := false
	for i := range target.Schedule {
		if target.Schedule[i].Start == e.Slot {
			target.Schedule[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		target.Schedule = append(target.Schedule, entry)
	}

	target.Options = []Option{{CKOption1: e.Option}}
	return nil
}
