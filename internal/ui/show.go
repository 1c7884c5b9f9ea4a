package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/tsujimura/ckgrid/internal/grid"
)

func (a *App) showCmd() *cobra.Command {
	var clinicName string
	var copyToClipboard bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the appointment grid",
		Long: `Display the clinic's appointment grid as a table.

Rows are hourly time slots, columns are CK staff columns; cells carry
the patients whose entries start at that slot.`,
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

			g := grid.Project(clinic, a.slots())
			table := RenderGrid(g)

			fmt.Printf("=== %s ===\n\n", formatHeader(clinic.Name))
			fmt.Print(table)

			if first, _, ok := strings.Cut(table, "\n"); ok && ansi.StringWidth(first) > termWidth() {
				fmt.Println(formatMuted("\nGrid is wider than the terminal."))
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(ansi.Strip(table)); err != nil {
					return fmt.Errorf("copying grid: %w", err)
				}
				fmt.Println(formatMuted("\nCopied grid to clipboard."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&clinicName, "clinic", "", "Clinic name (default: first clinic)")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the plain-text grid to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
