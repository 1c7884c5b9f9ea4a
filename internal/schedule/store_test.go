package schedule

import (
	"errors"
	"testing"
)

func testClinic() *Clinic {
	return &Clinic{
		Name: "A",
		Patients: []*Patient{
			{Name: "", CK: "Yamada", Schedule: []ScheduleEntry{}, Options: []Option{{}}},
			{Name: "Tanaka", CK: "Yamada", Schedule: []ScheduleEntry{{Start: "09:00", End: "10:00"}}, Options: []Option{{}}},
			{Name: "Suzuki", CK: "Sato", Schedule: []ScheduleEntry{{Start: "10:00", End: "11:30"}}, Options: []Option{{CKOption1: "memo"}}},
		},
	}
}

func TestStore_SelectClinic(t *testing.T) {
	a := &Clinic{Name: "A"}
	b := &Clinic{Name: "B"}
	store := NewStore([]*Clinic{a, b})

	if store.Active() != a {
		t.Fatal("expected first clinic active after construction")
	}

	got, err := store.SelectClinic("B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != b || store.Active() != b {
		t.Error("expected B selected")
	}

	t.Run("not found leaves selection unchanged", func(t *testing.T) {
		_, err := store.SelectClinic("C")
		if !errors.Is(err, ErrClinicNotFound) {
			t.Fatalf("expected ErrClinicNotFound, got %v", err)
		}
		if store.Active() != b {
			t.Error("selection changed on failed lookup")
		}
	})
}

func TestStore_Empty(t *testing.T) {
	store := NewStore(nil)
	if store.Active() != nil {
		t.Error("expected nil active clinic for empty store")
	}
	if len(store.Clinics()) != 0 {
		t.Error("expected no clinics")
	}
}

func TestClinic_Columns(t *testing.T) {
	c := testClinic()

	columns := c.Columns()
	want := []string{"Yamada", "Sato"}
	if len(columns) != len(want) {
		t.Fatalf("expected %v, got %v", want, columns)
	}
	for i := range want {
		if columns[i] != want[i] {
			t.Errorf("column %d: expected %q, got %q", i, want[i], columns[i])
		}
	}
}

func TestClinic_Columns_PlaceholderOnly(t *testing.T) {
	c := &Clinic{Name: "A", Patients: []*Patient{
		{Name: "", CK: "Ito", Schedule: []ScheduleEntry{}, Options: []Option{{}}},
	}}
	columns := c.Columns()
	if len(columns) != 1 || columns[0] != "Ito" {
		t.Errorf("expected placeholder-only column [Ito], got %v", columns)
	}
}

func TestClinic_PatientsByColumn(t *testing.T) {
	c := testClinic()

	byColumn := c.PatientsByColumn()
	if len(byColumn["Yamada"]) != 2 {
		t.Errorf("expected 2 patients under Yamada, got %d", len(byColumn["Yamada"]))
	}
	if len(byColumn["Sato"]) != 1 {
		t.Errorf("expected 1 patient under Sato, got %d", len(byColumn["Sato"]))
	}
	// Order within a column follows insertion order.
	if byColumn["Yamada"][1].Name != "Tanaka" {
		t.Errorf("expected Tanaka second under Yamada, got %q", byColumn["Yamada"][1].Name)
	}
}

func TestClinic_AddColumn(t *testing.T) {
	c := testClinic()

	if err := c.AddColumn("Ito"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	columns := c.Columns()
	if columns[len(columns)-1] != "Ito" {
		t.Errorf("expected new column last, got %v", columns)
	}

	// The column is introduced by a placeholder patient.
	placeholder := c.Patients[len(c.Patients)-1]
	if placeholder.Name != "" || placeholder.CK != "Ito" || len(placeholder.Schedule) != 0 {
		t.Errorf("unexpected placeholder: %+v", placeholder)
	}

	t.Run("duplicate", func(t *testing.T) {
		if err := c.AddColumn("Yamada"); !errors.Is(err, ErrDuplicateColumn) {
			t.Errorf("expected ErrDuplicateColumn, got %v", err)
		}
	})
}

func TestClinic_RemoveColumn(t *testing.T) {
	c := testClinic()

	// Removal deletes every patient under the CK, not just the placeholder.
	if err := c.RemoveColumn("Yamada"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Patients) != 1 {
		t.Fatalf("expected 1 patient left, got %d", len(c.Patients))
	}
	for _, column := range c.Columns() {
		if column == "Yamada" {
			t.Error("column still visible after removal")
		}
	}

	t.Run("missing column", func(t *testing.T) {
		if err := c.RemoveColumn("Nobody"); !errors.Is(err, ErrColumnNotFound) {
			t.Errorf("expected ErrColumnNotFound, got %v", err)
		}
	})
}

func TestClinic_AddPatient(t *testing.T) {
	c := testClinic()

	if err := c.AddPatient("Watanabe", "Sato", "13:00", "14:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := c.Patients[len(c.Patients)-1]
	if p.Name != "Watanabe" || p.CK != "Sato" {
		t.Errorf("unexpected patient: %+v", p)
	}
	// The schedule holds one well-formed entry.
	if len(p.Schedule) != 1 || p.Schedule[0] != (ScheduleEntry{Start: "13:00", End: "14:00"}) {
		t.Errorf("unexpected schedule: %+v", p.Schedule)
	}

	t.Run("unknown column", func(t *testing.T) {
		if err := c.AddPatient("X", "Nobody", "09:00", "10:00"); !errors.Is(err, ErrInvalidColumn) {
			t.Errorf("expected ErrInvalidColumn, got %v", err)
		}
	})
}

func TestClinic_RemovePatient(t *testing.T) {
	c := testClinic()

	if err := c.RemovePatient("Tanaka"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Patients) != 2 {
		t.Fatalf("expected 2 patients left, got %d", len(c.Patients))
	}
	// The placeholder keeps the column alive.
	if !c.HasColumn("Yamada") {
		t.Error("expected Yamada column to survive")
	}

	t.Run("missing patient", func(t *testing.T) {
		if err := c.RemovePatient("Tanaka"); !errors.Is(err, ErrPatientNotFound) {
			t.Errorf("expected ErrPatientNotFound, got %v", err)
		}
	})

	t.Run("first match only", func(t *testing.T) {
		c := &Clinic{Name: "A", Patients: []*Patient{
			{Name: "Kato", CK: "X"},
			{Name: "Kato", CK: "Y"},
		}}
		if err := c.RemovePatient("Kato"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Patients) != 1 || c.Patients[0].CK != "Y" {
			t.Errorf("expected the first Kato removed, got %+v", c.Patients)
		}
	})
}

func TestPatient_Option(t *testing.T) {
	p := &Patient{}
	if p.Option() != "" {
		t.Errorf("expected empty option, got %q", p.Option())
	}
	p.Options = []Option{{CKOption1: "memo"}}
	if p.Option() != "memo" {
		t.Errorf("expected memo, got %q", p.Option())
	}
}

func TestStore_SaveStatus(t *testing.T) {
	store := NewStore(nil)

	if store.LastSaveStatus().State != SaveUnsaved {
		t.Error("expected SaveUnsaved before any save")
	}

	store.RecordSave(nil)
	status := store.LastSaveStatus()
	if status.State != SaveOK || status.Err != nil || status.At.IsZero() {
		t.Errorf("unexpected status after successful save: %+v", status)
	}

	someErr := errors.New("disk full")
	store.RecordSave(someErr)
	status = store.LastSaveStatus()
	if status.State != SaveFailed || !errors.Is(status.Err, someErr) {
		t.Errorf("unexpected status after failed save: %+v", status)
	}
}
