package cmd

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"r2logs/internal/r2client"
	"r2logs/pkg/utils"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Download a single log object from the R2 bucket",
	Long: `Download one log object directly from the R2 bucket over its
S3-compatible API, bypassing the Logs Engine endpoints. Use the list
command to find object keys. The object body is printed to stdout.`,
	Example: `  # download an object reported by the list command
  r2logs get 20240111/20240111T150000Z_20240111T150500Z_abcdef.log.gz

  # pretty-print the records inside the object
  r2logs get -p 20240111/key.log`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	client, err := r2client.New(cfg)
	if err != nil {
		return err
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	log.Debug().Str("bucket", cfg.BucketName).Str("key", key).Msg("downloading object")

	result, err := client.GetObject(ctx, key)
	if err != nil {
		return err
	}

	log.Debug().Str("size", utils.FormatBytes(result.Size)).Msg("object downloaded")

	if isPretty(cmd) {
		utils.PrintNDJSON(string(result.Body))
	} else {
		utils.PrintRaw(string(result.Body))
	}
	return nil
}

func init() {
	getCmd.Flags().Int("timeout", 300, "Timeout in seconds for the download")
}
