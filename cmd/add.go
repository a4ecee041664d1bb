package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/internal/tracker"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a habit",
	Long:  `The "add" command starts tracking a new habit. Names are trimmed and limited to 50 characters.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  withTracker(add),
}

func add(cmd *cobra.Command, args []string, tr *tracker.Tracker) error {
	h, err := tr.AddHabit(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", h.Name, h.ID)
	return nil
}

func init() {
	rootCmd.AddCommand(addCmd)
}
