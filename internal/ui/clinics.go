package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) clinicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clinics",
		Short: "List clinics in the timetable",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := a.loadStore(context.Background())
			if err != nil {
				return err
			}

			clinics := store.Clinics()
			if len(clinics) == 0 {
				fmt.Println("No clinics in the timetable.")
				return nil
			}

			active := store.Active()
			for _, c := range clinics {
				marker := " "
				if c == active {
					marker = "*"
				}
				columns := c.Columns()
				fmt.Printf("%s %s  %s\n", marker, formatName(c.Name),
					formatMuted(fmt.Sprintf("(%d patients, CK: %s)", len(c.Patients), strings.Join(columns, ", "))))
			}
			return nil
		},
	}
}
