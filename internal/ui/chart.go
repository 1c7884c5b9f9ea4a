package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsujimura/ckgrid/internal/timeline"
)

func (a *App) chartCmd() *cobra.Command {
	var clinicName string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show the schedule timeline",
		Long: `Display every schedule entry as an hour bar per CK column.

Each column gets a deterministic color; the same column keeps the same
color across renders.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			ctx := context.Background()
			store, err := a.loadStore(ctx)
			if err != nil {
				return err
			}
			clinic, err := a.clinicFor(store, clinicName)
			if err != nil {
				return err
			}

			spans := timeline.Spans(clinic)
			if len(spans) == 0 {
				fmt.Println("No schedule entries.")
				return nil
			}
			columns := timeline.Columns(spans)
			colors := timeline.Colors(columns)

			fmt.Printf("=== %s ===\n\n", formatHeader(clinic.Name))
			fmt.Print(RenderTimeline(spans, colors, a.dayStartHour(), a.dayEndHour()))

			fmt.Println()
			for _, column := range columns {
				fmt.Printf("  %s %s\n", padRight(column, 12), formatMuted(colors[column].HSL()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&clinicName, "clinic", "", "Clinic name (default: first clinic)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
