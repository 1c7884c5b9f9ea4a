package schedule

import (
	"fmt"
	"iter"
	"slices"
)

// TimeSlots returns the hourly slot labels between two "HH:MM" bounds as a
// restartable sequence: "HH:00" from the start hour (inclusive) up to but
// excluding the end hour. Minutes in either bound are ignored. A start hour
// at or past the end hour, or an unparseable bound, yields an empty
// sequence rather than an error.
func TimeSlots(start, end string) iter.Seq[string] {
	return func(yield func(string) bool) {
		sh, ok := clockHour(start)
		if !ok {
			return
		}
		eh, ok := clockHour(end)
		if !ok {
			return
		}
		for h := sh; h < eh; h++ {
			if !yield(fmt.Sprintf("%02d:00", h)) {
				return
			}
		}
	}
}

// SlotLabels collects TimeSlots into a slice for callers that index slots.
func SlotLabels(start, end string) []string {
	return slices.Collect(TimeSlots(start, end))
}
