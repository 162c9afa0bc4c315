package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

const barWidth = 20

func renderItems(w io.Writer, items []domain.LearningItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No learning items.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tSTATUS\tPROGRESS")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s %3d%%\n",
			it.ID, it.Title, it.Category, it.Status, progressBar(it.Progress, 10), it.Progress)
	}
	return tw.Flush()
}

func renderTimeline(w io.Writer, days []domain.TimelineDay) error {
	if len(days) == 0 {
		_, err := fmt.Fprintln(w, "No activity logged yet.")
		return err
	}

	var b strings.Builder
	for i, day := range days {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\n", day.Date)
		for _, e := range day.Entries {
			fmt.Fprintf(&b, "  %s  %s", e.ID, e.Text)
			if e.ItemTitle != "" {
				fmt.Fprintf(&b, "  [%s]", e.ItemTitle)
			}
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderDashboard(w io.Writer, d domain.Dashboard) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Streak:       %d day%s\n", d.Streak, plural(d.Streak))
	fmt.Fprintf(&b, "In progress:  %d\n", d.ActiveCount)
	fmt.Fprintf(&b, "Completed:    %d\n", d.CompletedCount)

	if d.CurrentFocus != nil {
		fmt.Fprintf(&b, "Focus:        %s (%d%%)\n", d.CurrentFocus.Title, d.CurrentFocus.Progress)
	} else {
		b.WriteString("Focus:        -\n")
	}

	b.WriteString("\nActivity\n")
	peak := 0
	for _, day := range d.Days {
		peak = max(peak, day.Count)
	}
	for _, day := range d.Days {
		n := 0
		if peak > 0 {
			n = day.Count * barWidth / peak
		}
		fmt.Fprintf(&b, "  %s  %-*s %d\n", day.Date, barWidth, strings.Repeat("#", n), day.Count)
	}

	b.WriteString("\nRecent\n")
	if len(d.RecentActivities) == 0 {
		b.WriteString("  -\n")
	}
	for _, a := range d.RecentActivities {
		fmt.Fprintf(&b, "  %s  %s\n", a.Date, a.Text)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func progressBar(progress, width int) string {
	filled := domain.ClampProgress(progress) * width / 100
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
