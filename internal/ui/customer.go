package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) addCustomerCmd() *cobra.Command {
	var (
		clinicName string
		ck         string
		start      string
		end        string
	)

	cmd := &cobra.Command{
		Use:   "add-customer NAME",
		Short: "Add a customer under an existing CK column",
		Long: `Add a new customer with one schedule entry.

The CK column must already exist; create it first with add-ck.

Example:
  ckgrid add-customer Tanaka --ck=Yamada --start=09:00 --end=10:00`,
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

			if err := clinic.AddPatient(args[0], ck, start, end); err != nil {
				return fmt.Errorf("adding customer %q: %w", args[0], err)
			}
			a.save(ctx, store)

			fmt.Printf("Added %s under %s, %s〜%s\n", formatName(args[0]), ck, start, end)
			return nil
		},
	}

	cmd.Flags().StringVar(&clinicName, "clinic", "", "Clinic name (default: first clinic)")
	cmd.Flags().StringVar(&ck, "ck", "", "CK column (required)")
	cmd.Flags().StringVar(&start, "start", "09:00", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "11:00", "End time (HH:MM)")

	_ = cmd.MarkFlagRequired("ck")

	return cmd
}

func (a *App) removeCustomerCmd() *cobra.Command {
	var clinicName string

	cmd := &cobra.Command{
		Use:   "remove-customer NAME",
		Short: "Remove the first customer with the given name",
		Args:  cobra.ExactArgs(1),
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

			if err := clinic.RemovePatient(args[0]); err != nil {
				return fmt.Errorf("removing customer %q: %w", args[0], err)
			}
			a.save(ctx, store)

			fmt.Printf("Removed %s from %s\n", formatName(args[0]), clinic.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&clinicName, "clinic", "", "Clinic name (default: first clinic)")
	return cmd
}
