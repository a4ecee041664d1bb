package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/internal/server"
	"github.com/brk3/habitgrid/internal/tracker"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  withTracker(startServer, tracker.WithObserver(server.ObserveData)),
}

func init() {
	serverCmd.Flags().StringP("listen", "l", "", "listen address (overrides server.listen_addr)")
	rootCmd.AddCommand(serverCmd)
}

func startServer(cmd *cobra.Command, _ []string, tr *tracker.Tracker) error {
	if addr, _ := cmd.Flags().GetString("listen"); addr != "" {
		cfg.Server.ListenAddr = addr
	}
	return server.New(cfg, tr).ListenAndServe(cmd.Context())
}
