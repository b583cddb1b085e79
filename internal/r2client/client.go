package r2client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "r2logs/config"
	"r2logs/internal/models"
)

// Client reads log objects straight from the R2 bucket over its
// S3-compatible API, using the same access key pair the Logs Engine
// endpoints authenticate with.
type Client struct {
	s3Client *s3.Client
	config   *appConfig.Config
}

// EndpointURL returns the account-scoped R2 S3 endpoint.
func EndpointURL(accountID string) string {
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
}

func New(cfg *appConfig.Config) (*Client, error) {
	// R2 ignores the region; the SDK still requires one.
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.AccessKeyID,
				SecretAccessKey: cfg.SecretAccessKey,
			},
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(EndpointURL(cfg.AccountID))
		o.UsePathStyle = true
	})

	return &Client{
		s3Client: s3Client,
		config:   cfg,
	}, nil
}

// GetObject downloads one log object from the bucket.
func (c *Client) GetObject(ctx context.Context, key string) (*models.ObjectResult, error) {
	downloader := manager.NewDownloader(c.s3Client)
	buf := manager.NewWriteAtBuffer([]byte{})

	size, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(c.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download object %s: %w", key, err)
	}

	return &models.ObjectResult{
		BucketName: c.config.BucketName,
		Key:        key,
		Size:       size,
		Body:       buf.Bytes(),
	}, nil
}
