package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/internal/tracker"
	"github.com/brk3/habitgrid/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive month grid",
	Args:  cobra.NoArgs,
	RunE: withTracker(func(cmd *cobra.Command, _ []string, tr *tracker.Tracker) error {
		return tui.Run(cmd.Context(), tr)
	}),
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
