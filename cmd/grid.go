package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/internal/render"
	"github.com/brk3/habitgrid/internal/tracker"
	"github.com/brk3/habitgrid/pkg/habit"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the month grid",
	Args:  cobra.NoArgs,
	RunE:  withTracker(grid),
}

func grid(cmd *cobra.Command, _ []string, tr *tracker.Tracker) error {
	year, month, err := parseMonth(monthFlag, tr.Today())
	if err != nil {
		return err
	}
	opts := render.Options{
		Plain: isPlain(cmd),
		Today: habit.DateKey(tr.Today()),
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Month(year, month, tr.Snapshot(), tr.MonthStats(year, month), opts))
	return nil
}

func init() {
	gridCmd.Flags().StringVar(&monthFlag, "month", "", "month to show as YYYY-MM (default current month)")
	rootCmd.AddCommand(gridCmd)
}
