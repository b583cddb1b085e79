package cmd

import (
	"github.com/spf13/cobra"

	"r2logs/internal/models"
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve [start_time] [end_time]",
	Short: "Stream logs stored in R2 that match the provided query parameters",
	Long: `Stream log records stored in the R2 bucket that fall inside the given
time range. This is the default command; running r2logs without a
subcommand behaves identically.

The response is newline-delimited JSON, one record per line.`,
	Example: `  # retrieve logs from 5 minutes ago to now
  r2logs retrieve

  # retrieve logs for an explicit time range, pretty-printed
  r2logs retrieve -p 2024-01-11T15:00:00Z 2024-01-11T15:05:00Z`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd, args, models.CommandRetrieve)
	},
}
