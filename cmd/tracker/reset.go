package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

func newResetCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every item and activity",
		Long:  "Removes the persisted state from the configured storage. Requires --yes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return domain.NewValidationError("yes", "pass --yes to delete all data")
			}
			if err := c.store().Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All items and activities deleted")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deletion")

	return cmd
}
