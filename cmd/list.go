package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/internal/tracker"
	"github.com/brk3/habitgrid/pkg/habit"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits",
	Long:  `The "list" command lets you list your tracked habits along with today's status.`,
	Args:  cobra.NoArgs,
	RunE:  withTracker(list),
}

func list(cmd *cobra.Command, _ []string, tr *tracker.Tracker) error {
	out := cmd.OutOrStdout()
	habits := tr.Habits()
	if len(habits) == 0 {
		fmt.Fprintln(out, "No habits yet. Add one with: habits add <name>")
		return nil
	}

	today := habit.DateKey(tr.Today())
	nameW := 0
	for _, h := range habits {
		nameW = max(nameW, runewidth.StringWidth(h.Name))
	}
	for _, h := range habits {
		status, err := tr.Status(h.ID, today)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %s  %s\n", h.ID, runewidth.FillRight(h.Name, nameW), status)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
