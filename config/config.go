package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the credentials and identifiers read from the environment.
// Loaded once at startup and never mutated; the API key only ever leaves
// this struct inside the outgoing Authorization header.
type Config struct {
	APIKey          string
	AccessKeyID     string
	SecretAccessKey string
	AccountID       string
	BucketName      string
}

// Environment variables consumed by Load.
const (
	EnvAPIKey          = "CF_API_KEY"
	EnvAccessKeyID     = "R2_ACCESS_KEY_ID"
	EnvSecretAccessKey = "R2_SECRET_ACCESS_KEY"
	EnvAccountID       = "CF_ACCOUNT_ID"
	EnvBucketName      = "BUCKET_NAME"
)

// Load reads the required environment variables, optionally seeded from a
// .env file. A missing variable does not stop the pass: every absent name
// is recorded and the combined error lists all of them, one per line.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment variables only")
	}

	var missing []string
	cfg := &Config{
		APIKey:          getEnv(EnvAPIKey, &missing),
		AccessKeyID:     getEnv(EnvAccessKeyID, &missing),
		SecretAccessKey: getEnv(EnvSecretAccessKey, &missing),
		AccountID:       getEnv(EnvAccountID, &missing),
		BucketName:      getEnv(EnvBucketName, &missing),
	}

	if len(missing) > 0 {
		return nil, errors.New(strings.Join(missing, "\n"))
	}

	return cfg, nil
}

func getEnv(name string, missing *[]string) string {
	value, ok := os.LookupEnv(name)
	if !ok {
		*missing = append(*missing, fmt.Sprintf("%s is not set", name))
		return ""
	}
	return value
}
