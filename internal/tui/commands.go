package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tsujimura/ckgrid/internal/schedule"
)

// documentLoadedMsg is sent when the timetable document is loaded.
type documentLoadedMsg struct {
	clinics []*schedule.Clinic
}

// saveResultMsg is sent when a background save finishes.
type saveResultMsg struct {
	err error
}

// errMsg is sent when an operation fails.
type errMsg struct {
	err error
}

// clearStatusMsg clears the transient status message.
type clearStatusMsg struct{}

// loadDocument loads the full document from the repository.
func loadDocument(repo schedule.Repository) tea.Cmd {
	return func() tea.Msg {
		clinics, err := repo.Load(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return documentLoadedMsg{clinics: clinics}
	}
}

// saveDocument persists the full document. The edit flow never waits on it;
// the result arrives later as a saveResultMsg and only updates the
// staleness indicator.
func saveDocument(repo schedule.Repository, clinics []*schedule.Clinic) tea.Cmd {
	return func() tea.Msg {
		return saveResultMsg{err: repo.Save(context.Background(), clinics)}
	}
}

// clearStatusAfter clears the status message after a delay.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
