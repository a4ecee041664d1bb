package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/internal/tracker"
	"github.com/brk3/habitgrid/pkg/habit"
)

var markCmd = &cobra.Command{
	Use:     "mark <habit-id> <date> <status>",
	Aliases: []string{"track"},
	Short:   "Set a habit's status for a day",
	Long: `The "mark" command sets the status of a habit on a day. The date is YYYY-MM-DD,
"today" or "yesterday". The status is one of completed, failed or none; none clears the day.`,
	Args: cobra.ExactArgs(3),
	RunE: withTracker(mark),
}

func mark(cmd *cobra.Command, args []string, tr *tracker.Tracker) error {
	date, err := parseDay(args[1], tr.Today())
	if err != nil {
		return err
	}
	status, err := habit.ParseStatus(args[2])
	if err != nil {
		return err
	}
	if err := tr.SetStatus(cmd.Context(), args[0], date, status); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", args[0], date, status)
	return nil
}

func init() {
	rootCmd.AddCommand(markCmd)
}
