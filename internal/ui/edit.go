package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsujimura/ckgrid/internal/grid"
	"github.com/tsujimura/ckgrid/internal/schedule"
)

func (a *App) editCmd() *cobra.Command {
	var (
		clinicName string
		slot       string
		ck         string
		patient    string
		end        string
		option     string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit one grid cell",
		Long: `Upsert a schedule entry for a patient in one grid cell.

The entry whose start equals the slot is replaced with the new end
time; if the patient has no entry at that slot, one is appended. The
patient's annotation is replaced with --option. When --patient is
omitted, the first record already in the cell is edited.

Example:
  ckgrid edit --slot=09:00 --ck=Yamada --end=10:30 --option=加藤`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			store, err := a.loadStore(ctx)
			if err != nil {
				return err
			}
			clinic, err := a.clinicFor(store, clinicName)
			if err != nil {
				return err
			}

			// Default to the first record already in the cell.
			if patient == "" {
				g := grid.Project(clinic, a.slots())
				if cells := g.At(slot, ck); len(cells) > 0 {
					patient = cells[0].Name
				}
			}

			edit := schedule.Edit{
				Slot:    slot,
				Column:  ck,
				Patient: patient,
				End:     end,
				Option:  option,
			}
			if err := clinic.ApplyEdit(edit); err != nil {
				if errors.Is(err, schedule.ErrNoPatientName) {
					// Declined edit: a no-op, not a failure.
					return nil
				}
				return fmt.Errorf("editing cell (%s, %s): %w", slot, ck, err)
			}
			a.save(ctx, store)

			fmt.Printf("Updated %s at (%s, %s): %s〜%s\n", formatName(patient), slot, ck, slot, end)
			return nil
		},
	}

	cmd.Flags().StringVar(&clinicName, "clinic", "", "Clinic name (default: first clinic)")
	cmd.Flags().StringVar(&slot, "slot", "", "Slot label of the cell (HH:00, required)")
	cmd.Flags().StringVar(&ck, "ck", "", "CK column of the cell (required)")
	cmd.Flags().StringVar(&patient, "patient", "", "Patient name (default: first record in the cell)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM, required)")
	cmd.Flags().StringVar(&option, "option", "", "New annotation text")

	_ = cmd.MarkFlagRequired("slot")
	_ = cmd.MarkFlagRequired("ck")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
