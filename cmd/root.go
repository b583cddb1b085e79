package cmd

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"r2logs/config"
	"r2logs/internal/logsapi"
	"r2logs/internal/models"
	"r2logs/pkg/logger"
	"r2logs/pkg/timerange"
	"r2logs/pkg/utils"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "r2logs [start_time] [end_time]",
	Short: "Retrieve logs from the Cloudflare Logs Engine",
	Long: `r2logs is a command-line tool for retrieving logs stored in an R2 bucket
by the Cloudflare Logs Engine. Without a subcommand it retrieves log records
for the given time range (default: the last 5 minutes).

Timestamps are RFC3339 UTC, e.g. 2024-01-11T15:00:00Z.

Required environment variables (a .env file is also read if present):
  CF_API_KEY            Cloudflare API key
  R2_ACCESS_KEY_ID      R2 access key ID
  R2_SECRET_ACCESS_KEY  R2 secret access key
  CF_ACCOUNT_ID         Cloudflare account ID
  BUCKET_NAME           R2 bucket name`,
	Example: `  # retrieve logs from 5 minutes ago to now
  r2logs

  # retrieve logs for an explicit time range
  r2logs 2024-01-11T15:00:00Z 2024-01-11T15:05:00Z

  # pretty-print each record
  r2logs -p 2024-01-11T15:00:00Z 2024-01-11T15:05:00Z`,
	Args: cobra.MaximumNArgs(2),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(isVerbose(cmd))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd, args, models.CommandRetrieve)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(retrieveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output, print time range and endpoint")
	rootCmd.PersistentFlags().BoolP("pretty", "p", false, "Pretty-print each NDJSON record")
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

func isPretty(cmd *cobra.Command) bool {
	pretty, _ := cmd.Flags().GetBool("pretty")
	return pretty
}

// runFetch is the shared path for the retrieve and list commands: resolve
// the time range, build the endpoint, issue the request, print the body.
func runFetch(cmd *cobra.Command, args []string, command models.Command) error {
	var start, end string
	if len(args) > 0 {
		start = args[0]
	}
	if len(args) > 1 {
		end = args[1]
	}

	r, err := timerange.Resolve(start, end)
	if err != nil {
		return err
	}

	client := logsapi.New(cfg)
	endpoint := client.Endpoint(command, r)

	log.Debug().Str("start", r.Start).Str("end", r.End).Msg("retrieving logs")
	log.Debug().Str("endpoint", endpoint).Msg("accessing endpoint")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := client.Fetch(ctx, endpoint)
	if err != nil {
		return err
	}

	// Soft failures were already reported by the fetcher; nothing to print.
	if result.IsEmpty() {
		return nil
	}

	if isPretty(cmd) {
		utils.PrintNDJSON(result.Body)
	} else {
		utils.PrintRaw(result.Body)
	}
	return nil
}
