package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/internal/config"
	"github.com/brk3/habitgrid/internal/logger"
)

var (
	cfg       *config.Config
	ephemeral bool
	plain     bool
)

var rootCmd = &cobra.Command{
	Use:   "habits",
	Short: "Track daily habits on a month grid",
	Long: `
	Habits tracks a small set of daily habits. Each day a habit is either completed,
	failed, or not yet marked. The month grid, streaks and completion statistics are
	available from the CLI, an interactive terminal UI, or a local JSON API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if ephemeral {
			c.Backend = config.BackendMemory
		}
		if err := logger.Setup(c.Log.Level, c.Log.Format); err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep data in memory only; nothing is persisted")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable colours and styling")
}
