package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/pkg/habit"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print today's quote",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q := habit.DailyQuote(time.Now())
		fmt.Fprintf(cmd.OutOrStdout(), "“%s”\n  %s\n", q.Text, q.Author)
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}
