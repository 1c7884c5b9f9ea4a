package schedule

import (
	"errors"
	"reflect"
	"testing"
)

func TestApplyEdit_Append(t *testing.T) {
	c := testClinic()
	tanaka := c.Patients[1]
	before := len(tanaka.Schedule)

	err := c.ApplyEdit(Edit{Slot: "11:00", Column: "Yamada", Patient: "Tanaka", End: "12:00", Option: "初診"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tanaka.Schedule) != before+1 {
		t.Fatalf("expected entry appended, got %d entries", len(tanaka.Schedule))
	}
	last := tanaka.Schedule[len(tanaka.Schedule)-1]
	if last != (ScheduleEntry{Start: "11:00", End: "12:00"}) {
		t.Errorf("unexpected appended entry: %+v", last)
	}
	if tanaka.Option() != "初診" {
		t.Errorf("expected option replaced, got %q", tanaka.Option())
	}
}

func TestApplyEdit_Replace(t *testing.T) {
	c := testClinic()
	tanaka := c.Patients[1] // has 09:00-10:00
	before := len(tanaka.Schedule)

	err := c.ApplyEdit(Edit{Slot: "09:00", Column: "Yamada", Patient: "Tanaka", End: "10:30", Option: "延長"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Replace, not append: the count is unchanged and the old end is gone.
	if len(tanaka.Schedule) != before {
		t.Fatalf("expected entry count unchanged, got %d", len(tanaka.Schedule))
	}
	if tanaka.Schedule[0] != (ScheduleEntry{Start: "09:00", End: "10:30"}) {
		t.Errorf("unexpected entry after replace: %+v", tanaka.Schedule[0])
	}
}

func TestApplyEdit_Idempotent(t *testing.T) {
	c := testClinic()
	tanaka := c.Patients[1]
	edit := Edit{Slot: "14:00", Column: "Yamada", Patient: "Tanaka", End: "15:00", Option: "memo"}

	if err := c.ApplyEdit(edit); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	after := make([]ScheduleEntry, len(tanaka.Schedule))
	copy(after, tanaka.Schedule)

	if err := c.ApplyEdit(edit); err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if !reflect.DeepEqual(after, tanaka.Schedule) {
		t.Errorf("second apply changed the schedule:\nfirst:  %+v\nsecond: %+v", after, tanaka.Schedule)
	}
}

func TestApplyEdit_OptionReplacedWholesale(t *testing.T) {
	c := testClinic()
	suzuki := c.Patients[2] // has option "memo"

	err := c.ApplyEdit(Edit{Slot: "10:00", Column: "Sato", Patient: "Suzuki", End: "12:00", Option: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// An empty new option wipes the old one; nothing is merged.
	if len(suzuki.Options) != 1 || suzuki.Option() != "" {
		t.Errorf("expected single empty option record, got %+v", suzuki.Options)
	}
}

func TestApplyEdit_NoPatientName(t *testing.T) {
	c := testClinic()
	snapshot := len(c.Patients[1].Schedule)

	err := c.ApplyEdit(Edit{Slot: "09:00", Column: "Yamada", Patient: "", End: "10:30"})
	if !errors.Is(err, ErrNoPatientName) {
		t.Fatalf("expected ErrNoPatientName, got %v", err)
	}
	if len(c.Patients[1].Schedule) != snapshot {
		t.Error("declined edit mutated the schedule")
	}
}

func TestApplyEdit_PatientNotFound(t *testing.T) {
	c := testClinic()

	tests := []struct {
		name string
		edit Edit
	}{
		{"unknown name", Edit{Slot: "09:00", Column: "Yamada", Patient: "Nobody", End: "10:00"}},
		{"right name wrong column", Edit{Slot: "09:00", Column: "Sato", Patient: "Tanaka", End: "10:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.ApplyEdit(tt.edit); !errors.Is(err, ErrPatientNotFound) {
				t.Errorf("expected ErrPatientNotFound, got %v", err)
			}
		})
	}
}

func TestApplyEdit_ReplacesFirstMatchingStart(t *testing.T) {
	// Duplicate start labels can exist in hand-edited documents; only the
	// first one is replaced.
	c := &Clinic{Name: "A", Patients: []*Patient{
		{Name: "Kato", CK: "X", Schedule: []ScheduleEntry{
			{Start: "09:00", End: "10:00"},
			{Start: "09:00", End: "11:00"},
		}},
	}}

	err := c.ApplyEdit(Edit{Slot: "09:00", Column: "X", Patient: "Kato", End: "09:30"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kato := c.Patients[0]
	if kato.Schedule[0].End != "09:30" {
		t.Errorf("expected first entry replaced, got %+v", kato.Schedule[0])
	}
	if kato.Schedule[1].End != "11:00" {
		t.Errorf("expected second entry untouched, got %+v", kato.Schedule[1])
	}
}
