package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/learning-tracker/internal/domain"
	"github.com/heartmarshall/learning-tracker/internal/tracker"
)

func newItemCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items"},
		Short:   "Manage learning items",
	}
	cmd.AddCommand(
		newItemAddCmd(c),
		newItemListCmd(c),
		newItemUpdateCmd(c),
		newItemDeleteCmd(c),
	)
	return cmd
}

func newItemAddCmd(c *cli) *cobra.Command {
	var (
		input    tracker.AddItemInput
		category string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a learning item",
		Example: `  tracker item add --title "Segment trees" --category dsa
  tracker item add --title "HTTP/3" --category web --status "in progress" --progress 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if input.Category, err = parseCategory(category); err != nil {
				return err
			}
			if input.Status, err = parseStatus(status); err != nil {
				return err
			}
			input.Title = strings.TrimSpace(input.Title)
			if err := input.Validate(); err != nil {
				return err
			}

			item, err := c.store().AddItem(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added item %s\n", item.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input.Title, "title", "t", "", "item title (required)")
	f.StringVarP(&category, "category", "c", string(domain.CategoryOther), "category: "+choices(domain.Categories))
	f.StringVarP(&status, "status", "s", string(domain.StatusNotStarted), "status: "+choices(domain.Statuses))
	f.IntVarP(&input.Progress, "progress", "p", 0, "completion percentage (0-100)")
	f.StringVarP(&input.Notes, "notes", "n", "", "free-form notes")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newItemListCmd(c *cli) *cobra.Command {
	var (
		filter   tracker.ItemFilter
		category string
		status   string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List learning items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if category != "" {
				if filter.Category, err = parseCategory(category); err != nil {
					return err
				}
			}
			if status != "" {
				if filter.Status, err = parseStatus(status); err != nil {
					return err
				}
			}
			if err := filter.Validate(); err != nil {
				return err
			}

			return renderItems(cmd.OutOrStdout(), c.store().FilterItems(filter))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&filter.Search, "search", "q", "", "case-insensitive title search")
	f.StringVarP(&category, "category", "c", "", "only this category: "+choices(domain.Categories))
	f.StringVarP(&status, "status", "s", "", "only this status: "+choices(domain.Statuses))

	return cmd
}

func newItemUpdateCmd(c *cli) *cobra.Command {
	var (
		title    string
		category string
		status   string
		progress int
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a learning item",
		Long:  "Only the flags given are changed; everything else is kept.",
		Example: `  tracker item update 3f2a... --status completed --progress 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input tracker.UpdateItemInput
			f := cmd.Flags()

			if f.Changed("title") {
				t := strings.TrimSpace(title)
				input.Title = &t
			}
			if f.Changed("category") {
				cat, err := parseCategory(category)
				if err != nil {
					return err
				}
				input.Category = &cat
			}
			if f.Changed("status") {
				st, err := parseStatus(status)
				if err != nil {
					return err
				}
				input.Status = &st
			}
			if f.Changed("progress") {
				input.Progress = &progress
			}
			if f.Changed("notes") {
				input.Notes = &notes
			}
			if err := input.Validate(); err != nil {
				return err
			}

			id := args[0]
			if _, ok := c.store().Item(id); !ok {
				return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
			}
			if err := c.store().UpdateItem(cmd.Context(), id, input); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated item %s\n", id)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&title, "title", "t", "", "new title")
	f.StringVarP(&category, "category", "c", "", "new category: "+choices(domain.Categories))
	f.StringVarP(&status, "status", "s", "", "new status: "+choices(domain.Statuses))
	f.IntVarP(&progress, "progress", "p", 0, "new completion percentage (0-100)")
	f.StringVarP(&notes, "notes", "n", "", "new notes")

	return cmd
}

func newItemDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a learning item and every activity linked to it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			_, found := c.store().Item(id)
			linked := slices.ContainsFunc(c.store().Activities(), func(a domain.Activity) bool {
				return a.LinkedTo(id)
			})
			if !found && !linked {
				return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
			}
			if err := c.store().DeleteItem(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %s\n", id)
			return nil
		},
	}
}

func parseCategory(s string) (domain.Category, error) {
	c, ok := domain.ParseCategory(s)
	if !ok {
		return "", domain.NewValidationError("category", fmt.Sprintf("unknown value %q", s))
	}
	return c, nil
}

func parseStatus(s string) (domain.Status, error) {
	st, ok := domain.ParseStatus(s)
	if !ok {
		return "", domain.NewValidationError("status", fmt.Sprintf("unknown value %q", s))
	}
	return st, nil
}

// choices renders enum values for flag help, e.g. "DSA", "Web".
func choices[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%q", string(v))
	}
	return strings.Join(parts, ", ")
}
