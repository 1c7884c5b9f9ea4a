// Package ui provides the ckgrid command line interface.
package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tsujimura/ckgrid/internal/config"
	"github.com/tsujimura/ckgrid/internal/schedule"
	"github.com/tsujimura/ckgrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   schedule.Repository
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given repository and config.
func NewApp(repo schedule.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "ckgrid",
		Short: "A clinic CK timetable on your terminal",
		Long: `ckgrid manages a clinic's daily appointment grid.

Patients are assigned to a staff column (CK) and hourly time slots;
the grid renders as a table and a derived timeline, and can be edited
in place. Running ckgrid without a subcommand opens the interactive
grid editor.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.repo, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.clinicsCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.chartCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.addCKCmd())
	a.root.AddCommand(a.removeCKCmd())
	a.root.AddCommand(a.addCustomerCmd())
	a.root.AddCommand(a.removeCustomerCmd())
	a.root.AddCommand(a.serveCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("ckgrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// loadStore loads the document and wraps it in a store.
func (a *App) loadStore(ctx context.Context) (*schedule.Store, error) {
	clinics, err := a.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading timetable: %w", err)
	}
	return schedule.NewStore(clinics), nil
}

// clinicFor resolves the clinic a command operates on: the named one when
// the --clinic flag is set, the first clinic otherwise.
func (a *App) clinicFor(store *schedule.Store, name string) (*schedule.Clinic, error) {
	if name != "" {
		return store.SelectClinic(name)
	}
	c := store.Active()
	if c == nil {
		return nil, schedule.ErrClinicNotFound
	}
	return c, nil
}

// save persists the full document. A failure is surfaced as a warning and
// never rolls back the in-memory mutation.
func (a *App) save(ctx context.Context, store *schedule.Store) {
	err := a.repo.Save(ctx, store.Clinics())
	store.RecordSave(err)
	if err != nil {
		fmt.Println(formatWarning(fmt.Sprintf("warning: save failed: %v (the change is not on disk)", err)))
	}
}

// slots returns the configured slot labels for the visible day range.
func (a *App) slots() []string {
	return schedule.SlotLabels(a.config.Schedule.DayStart, a.config.Schedule.DayEnd)
}

// dayStartHour returns the hour of the configured day start. The config is
// validated to HH:MM, so the slice is safe.
func (a *App) dayStartHour() int {
	h, _ := strconv.Atoi(a.config.Schedule.DayStart[:2])
	return h
}

// dayEndHour returns the hour of the configured day end.
func (a *App) dayEndHour() int {
	h, _ := strconv.Atoi(a.config.Schedule.DayEnd[:2])
	return h
}
