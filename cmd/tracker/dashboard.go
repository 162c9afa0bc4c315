package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStreakCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Print the number of consecutive days with logged activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.store().Streak())
			return nil
		},
	}
}

func newDashboardCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show counts, streak, weekly activity and your current focus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderDashboard(cmd.OutOrStdout(), c.store().Dashboard())
		},
	}
}
