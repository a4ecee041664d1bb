package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/internal/apiclient"
	"github.com/brk3/habitgrid/pkg/versioninfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `The "version" command displays the current version info for both client
and server if available.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version(cmd)
	},
}

func version(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Client Version: %s (built %s)\n", versioninfo.Version, versioninfo.BuildDate)

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
	defer cancel()
	v, err := apiclient.New(cfg.APIBaseURL).Version(ctx)
	if err != nil {
		fmt.Fprintln(out, "Server Version: unavailable")
		return
	}
	fmt.Fprintf(out, "Server Version: %s\n", v.Version)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
