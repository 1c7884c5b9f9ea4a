package schedule

import "time"

// Store owns the clinic collection and the currently active clinic. All
// mutation happens through Store or Clinic methods on owned state; there is
// no ambient global.
type Store struct {
	clinics  []*Clinic
	active   *Clinic
	lastSave SaveStatus
}

// NewStore builds a store over a loaded document. The first clinic becomes
// the active one when the document is non-empty.
func NewStore(clinics []*Clinic) *Store {
	s := &Store{clinics: clinics}
	if len(clinics) > 0 {
		s.active = clinics[0]
	}
	return s
}

// Clinics returns the clinic collection in document order.
func (s *Store) Clinics() []*Clinic {
	return s.clinics
}

// Active returns the currently selected clinic, or nil for an empty store.
func (s *Store) Active() *Clinic {
	return s.active
}

// SelectClinic makes the named clinic active and returns it.
// Returns ErrClinicNotFound without changing the selection if none matches.
func (s *Store) SelectClinic(name string) (*Clinic, error) {
	for _, c := range s.clinics {
		if c.Name == name {
			s.active = c
			return c, nil
		}
	}
	return nil, ErrClinicNotFound
}

// SaveState describes the outcome of the most recent persistence attempt.
type SaveState int

const (
	SaveUnsaved SaveState = iota // no save attempted yet
	SaveOK
	SaveFailed
)

// SaveStatus records the last save attempt so a UI can show staleness.
// A failed save never rolls back in-memory state; the document stays
// divergent from disk until the next successful save.
type SaveStatus struct {
	State SaveState
	Err   error
	At    time.Time
}

// RecordSave notes the outcome of a save attempt.
func (s *Store) RecordSave(err error) {
	status := SaveStatus{State: SaveOK, At: time.Now()}
	if err != nil {
		status.State = SaveFailed
		status.Err = err
	}
	s.lastSave = status
}

// LastSaveStatus returns the outcome of the most recent save attempt.
func (s *Store) LastSaveStatus() SaveStatus {
	return s.lastSave
}
