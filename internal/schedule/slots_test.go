package schedule

import (
	"fmt"
	"testing"
)

func TestTimeSlots(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "standard day range",
			start: "09:00",
			end:   "12:00",
			want:  []string{"09:00", "10:00", "11:00"},
		},
		{
			name:  "minutes are ignored",
			start: "09:45",
			end:   "12:30",
			want:  []string{"09:00", "10:00", "11:00"},
		},
		{
			name:  "single slot",
			start: "09:00",
			end:   "10:00",
			want:  []string{"09:00"},
		},
		{
			name:  "start equals end",
			start: "09:00",
			end:   "09:00",
			want:  nil,
		},
		{
			name:  "start after end",
			start: "12:00",
			end:   "09:00",
			want:  nil,
		},
		{
			name:  "single digit hours are zero padded",
			start: "8:00",
			end:   "10:00",
			want:  []string{"08:00", "09:00"},
		},
		{
			name:  "unparseable start",
			start: "morning",
			end:   "12:00",
			want:  nil,
		},
		{
			name:  "unparseable end",
			start: "09:00",
			end:   "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlotLabels(tt.start, tt.end)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d slots, got %d (%v)", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("slot %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestTimeSlots_CountAndOrder(t *testing.T) {
	// For every start < end pair the sequence holds exactly end-start
	// strictly increasing HH:00 labels.
	for start := 0; start < 24; start++ {
		for end := start + 1; end <= 23; end++ {
			labels := SlotLabels(fmt.Sprintf("%02d:00", start), fmt.Sprintf("%02d:00", end))
			if len(labels) != end-start {
				t.Fatalf("%02d-%02d: expected %d labels, got %d", start, end, end-start, len(labels))
			}
			for i, label := range labels {
				want := fmt.Sprintf("%02d:00", start+i)
				if label != want {
					t.Fatalf("%02d-%02d: label %d: expected %q, got %q", start, end, i, want, label)
				}
			}
		}
	}
}

func TestTimeSlots_Restartable(t *testing.T) {
	seq := TimeSlots("09:00", "12:00")

	first := make([]string, 0, 3)
	for s := range seq {
		first = append(first, s)
	}
	second := make([]string, 0, 3)
	for s := range seq {
		second = append(second, s)
	}

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 labels per pass, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("pass mismatch at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestTimeSlots_EarlyStop(t *testing.T) {
	var got []string
	for s := range TimeSlots("09:00", "20:00") {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 || got[1] != "10:00" {
		t.Errorf("expected early stop after [09:00 10:00], got %v", got)
	}
}
