package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/internal/render"
	"github.com/brk3/habitgrid/internal/tracker"
	"github.com/brk3/habitgrid/pkg/habit"
)

var monthFlag string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks and completion statistics for a month",
	Args:  cobra.NoArgs,
	RunE:  withTracker(stats),
}

func stats(cmd *cobra.Command, _ []string, tr *tracker.Tracker) error {
	year, month, err := parseMonth(monthFlag, tr.Today())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	opts := render.Options{Plain: isPlain(cmd)}

	fmt.Fprintf(out, "%s %d\n", habit.MonthName(month), year)
	fmt.Fprint(out, render.Stats(tr.MonthStats(year, month), opts))

	summaries := tr.HabitSummaries(year, month)
	if len(summaries) == 0 {
		return nil
	}
	nameW := 0
	for _, s := range summaries {
		nameW = max(nameW, runewidth.StringWidth(s.Name))
	}
	fmt.Fprintln(out)
	for _, s := range summaries {
		fmt.Fprintf(out, "%s  %s %d  %s %d  %s %d\n", runewidth.FillRight(s.Name, nameW),
			render.Glyph(habit.StatusCompleted), s.Completed,
			render.Glyph(habit.StatusFailed), s.Failed,
			render.Glyph(habit.StatusNone), s.None)
	}
	return nil
}

func init() {
	statsCmd.Flags().StringVar(&monthFlag, "month", "", "month to report as YYYY-MM (default current month)")
	rootCmd.AddCommand(statsCmd)
}
