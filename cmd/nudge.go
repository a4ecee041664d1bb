package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brk3/habitgrid/internal/apiclient"
	"github.com/brk3/habitgrid/internal/nudge"
	"github.com/brk3/habitgrid/internal/nudge/resend"
	"github.com/brk3/habitgrid/internal/tracker"
)

var remote bool

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Email a reminder when today's unmarked habits would break the streak",
	Long: `The "nudge" command checks the current full-completion streak and, when it would
end tonight, emails the habits still unmarked today. Requires nudge.resend_api_key and
nudge.email (or HABITS_RESEND_API_KEY and HABITS_NOTIFY_EMAIL).`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Nudge.ResendAPIKey == "" {
			return errors.New("nudge.resend_api_key (HABITS_RESEND_API_KEY) is not set")
		}
		if cfg.Nudge.Email == "" {
			return errors.New("nudge.email (HABITS_NOTIFY_EMAIL) is not set")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if remote {
			return runNudge(cmd, apiclient.New(cfg.APIBaseURL), time.Now())
		}
		return withTracker(func(cmd *cobra.Command, _ []string, tr *tracker.Tracker) error {
			return runNudge(cmd, tr, tr.Today())
		})(cmd, args)
	},
}

func runNudge(cmd *cobra.Command, q nudge.Querier, today time.Time) error {
	n := &resend.ResendNotifier{
		ApiKey: cfg.Nudge.ResendAPIKey,
		Email:  cfg.Nudge.Email,
		From:   cfg.Nudge.From,
	}
	sent, err := nudge.Nudge(cmd.Context(), q, n, today)
	if err != nil {
		return err
	}
	if sent {
		fmt.Fprintf(cmd.OutOrStdout(), "Reminder sent to %s\n", cfg.Nudge.Email)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "No streak at risk")
	}
	return nil
}

func init() {
	nudgeCmd.Flags().BoolVar(&remote, "remote", false, "read habits from the API at api_base_url instead of the local store")
	rootCmd.AddCommand(nudgeCmd)
}
