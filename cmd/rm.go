package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/internal/tracker"
	"github.com/brk3/habitgrid/pkg/habit"
)

var rmCmd = &cobra.Command{
	Use:     "rm <habit-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a habit and all of its history",
	Args:    cobra.ExactArgs(1),
	RunE:    withTracker(rm),
}

func rm(cmd *cobra.Command, args []string, tr *tracker.Tracker) error {
	h, ok := habit.HabitByID(tr.Habits(), args[0])
	if !ok {
		return fmt.Errorf("%w: %s", habit.ErrUnknownHabit, args[0])
	}
	tr.DeleteHabit(cmd.Context(), h.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", h.Name)
	return nil
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
