package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/learning-tracker/internal/domain"
	"github.com/heartmarshall/learning-tracker/internal/tracker"
)

func newActivityCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"activities", "act"},
		Short:   "Log and review daily activity",
	}
	cmd.AddCommand(
		newActivityLogCmd(c),
		newActivityQuickCmd(c),
		newActivityListCmd(c),
		newActivityDeleteCmd(c),
	)
	return cmd
}

func newActivityLogCmd(c *cli) *cobra.Command {
	var (
		date   string
		itemID string
	)

	cmd := &cobra.Command{
		Use:   "log <text>...",
		Short: "Log what you did on a day",
		Example: `  tracker activity log "read chapter 3"
  tracker activity log --date 2024-03-14 --item 3f2a... "two LeetCode mediums"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := tracker.AddActivityInput{
				Date: date,
				Text: strings.TrimSpace(strings.Join(args, " ")),
			}
			if input.Date == "" {
				input.Date = c.today()
			}
			if cmd.Flags().Changed("item") {
				if _, ok := c.store().Item(itemID); !ok {
					return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
				}
				input.LearningItemID = &itemID
			}
			if err := input.Validate(); err != nil {
				return err
			}

			a, err := c.store().AddActivity(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged activity %s on %s\n", a.ID, a.Date)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "day as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&itemID, "item", "i", "", "id of the learning item this belongs to")

	return cmd
}

func newActivityQuickCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "quick <text>...",
		Short: "Log for today, linked to your current focus item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if err := tracker.ValidateText(text); err != nil {
				return err
			}

			a, err := c.store().QuickLog(cmd.Context(), text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.LearningItemID != nil {
				if item, ok := c.store().Item(*a.LearningItemID); ok {
					fmt.Fprintf(out, "Logged activity %s on %s for %q\n", a.ID, a.Date, item.Title)
					return nil
				}
			}
			fmt.Fprintf(out, "Logged activity %s on %s\n", a.ID, a.Date)
			return nil
		},
	}
}

func newActivityListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "timeline"},
		Short:   "Show activities grouped by day, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderTimeline(cmd.OutOrStdout(), c.store().Timeline())
		},
	}
}

func newActivityDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an activity",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			exists := slices.ContainsFunc(c.store().Activities(), func(a domain.Activity) bool { return a.ID == id })
			if !exists {
				return fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
			}
			if err := c.store().DeleteActivity(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted activity %s\n", id)
			return nil
		},
	}
}
