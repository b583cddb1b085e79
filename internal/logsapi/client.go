package logsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	appConfig "r2logs/config"
	"r2logs/internal/models"
	"r2logs/pkg/timerange"
)

// BaseURL is the Logs Engine endpoint prefix. Overridable for tests.
const BaseURL = "https://api.cloudflare.com/client/v4/accounts"

// DatePrefix is sent literally; the Logs Engine expands it server-side.
const DatePrefix = "{DATE}"

// Client issues retrieval requests against the Cloudflare Logs Engine API.
type Client struct {
	httpClient *http.Client
	config     *appConfig.Config
	baseURL    string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternate API base, used in tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

func New(cfg *appConfig.Config, opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		config:     cfg,
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint builds the request URL for the given command and time range.
// Parameter values are interpolated as-is: timestamps are RFC3339 and the
// {DATE} prefix token must reach the server unescaped.
func (c *Client) Endpoint(command models.Command, r timerange.Range) string {
	return fmt.Sprintf("%s/%s/logs/%s?start=%s&end=%s&bucket=%s&prefix=%s",
		c.baseURL, c.config.AccountID, command, r.Start, r.End, c.config.BucketName, DatePrefix)
}

// Fetch performs one GET against the endpoint and classifies the outcome.
// Only transport-level failures return an error. A non-2xx status or an
// empty body is a soft failure: the result carries an empty body and a
// diagnostic class, and the caller exits normally.
func (c *Client) Fetch(ctx context.Context, endpoint string) (models.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("R2-Access-Key-Id", c.config.AccessKeyID)
	req.Header.Set("R2-Secret-Access-Key", c.config.SecretAccessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error().Int("status", resp.StatusCode).Msg("failed to retrieve logs")
		log.Error().Msg("error detail: " + excerpt(body))
		return models.FetchResult{
			Class:  models.DiagHTTPError,
			Status: resp.StatusCode,
			Detail: excerpt(body),
		}, nil
	}

	if len(body) == 0 {
		log.Warn().Msg("No logs found")
		log.Warn().Msg("Please check time range")
		return models.FetchResult{
			Class:  models.DiagEmpty,
			Status: resp.StatusCode,
		}, nil
	}

	return models.FetchResult{
		Body:   string(body),
		Class:  models.DiagOK,
		Status: resp.StatusCode,
	}, nil
}

const maxExcerpt = 512

func excerpt(body []byte) string {
	if len(body) > maxExcerpt {
		return string(body[:maxExcerpt]) + "..."
	}
	return string(body)
}
