package cmd

import (
	"github.com/spf13/cobra"

	"r2logs/internal/models"
)

var listCmd = &cobra.Command{
	Use:   "list [start_time] [end_time]",
	Short: "List relevant R2 objects containing logs matching the provided query parameters",
	Long: `List the R2 objects that contain log records for the given time range,
without returning the record contents. Object keys printed here can be
downloaded directly with the get command.`,
	Example: `  # list objects holding logs from the last 5 minutes
  r2logs list

  # list objects for an explicit time range
  r2logs list 2024-01-11T15:00:00Z 2024-01-11T15:05:00Z`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd, args, models.CommandList)
	},
}
