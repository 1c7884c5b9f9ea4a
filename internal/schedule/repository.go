package schedule

import "context"

// Repository defines the storage interface for the timetable document.
// The whole document is the unit of persistence: every save re-serializes
// and overwrites the entire clinic collection.
type Repository interface {
	// Load returns the full document. A missing document loads as empty.
	Load(ctx context.Context) ([]*Clinic, error)

	// Save overwrites the entire document. Last write wins.
	Save(ctx context.Context, clinics []*Clinic) error

	// Close releases any resources held by the repository.
	Close() error
}
