package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) addCKCmd() *cobra.Command {
	var clinicName string

	cmd := &cobra.Command{
		Use:   "add-ck NAME",
		Short: "Add a new CK staff column",
		Long: `Add a new CK (person in charge) column to the grid.

The column is introduced by a placeholder patient with an empty name
and an empty schedule.

Example:
  ckgrid add-ck Yamada`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			store, err := a.loadStore(ctx)
			if err != nil {
				return err
			}
			clinic, err := a.clinicFor(store, clinicName)
			if err != nil {
				return err
			}

			if err := clinic.AddColumn(args[0]); err != nil {
				return fmt.Errorf("adding column %q: %w", args[0], err)
			}
			a.save(ctx, store)

			fmt.Printf("Added CK column %s to %s\n", formatName(args[0]), clinic.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&clinicName, "clinic", "", "Clinic name (default: first clinic)")
	return cmd
}

func (a *App) removeCKCmd() *cobra.Command {
	var clinicName string

	cmd := &cobra.Command{
		Use:   "remove-ck NAME",
		Short: "Remove a CK column and every patient under it",
		Long: `Remove a CK column from the grid.

Removal deletes every patient carrying that CK, customers included,
not just the placeholder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			store, err := a.loadStore(ctx)
			if err != nil {
				return err
			}
			clinic, err := a.clinicFor(store, clinicName)
			if err != nil {
				return err
			}

			if err := clinic.RemoveColumn(args[0]); err != nil {
				return fmt.Errorf("removing column %q: %w", args[0], err)
			}
			a.save(ctx, store)

			fmt.Printf("Removed CK column %s from %s\n", formatName(args[0]), clinic.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&clinicName, "clinic", "", "Clinic name (default: first clinic)")
	return cmd
}
