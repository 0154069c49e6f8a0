package downloads

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"

	"github.com/musickeys/backend/app/models"
)

// Client issues short-lived download links for purchased files. When S3
// delivery is disabled it falls back to each file's static fallback URL.
type Client struct {
	s3Client  *s3.Client
	presigner *s3.PresignClient
	config    *Config
}

// NewClient creates a new S3 download client
func NewClient(cfg *Config) (*Client, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("S3 downloads are disabled")
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			// S3-compatible providers need path-style URLs
			o.UsePathStyle = true
			o.UseAccelerate = false
		}
	})

	client := &Client{
		s3Client:  s3Client,
		presigner: s3.NewPresignClient(s3Client),
		config:    cfg,
	}

	if err := client.testConnection(); err != nil {
		return nil, fmt.Errorf("failed to connect to S3: %w", err)
	}

	log.Infof("[Downloads] Successfully initialized S3 client for bucket: %s", cfg.GetBucketName())
	return client, nil
}

// testConnection checks that the configured bucket is reachable
func (c *Client) testConnection() error {
	_, err := c.s3Client.HeadBucket(context.Background(), &s3.HeadBucketInput{
		Bucket: aws.String(c.config.GetBucketName()),
	})
	if err != nil {
		return fmt.Errorf("bucket %s not accessible: %w", c.config.GetBucketName(), err)
	}
	return nil
}

// PresignDownload returns a time-limited URL for the object behind a
// purchasable file.
func (c *Client) PresignDownload(ctx context.Context, file *models.DownloadFile) (string, error) {
	ttl := time.Duration(c.config.LinkTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = DefaultLinkTTLSeconds * time.Second
	}

	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(c.config.GetBucketName()),
		Key:                        aws.String(file.ObjectKey),
		ResponseContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", file.FileName)),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", file.ObjectKey, err)
	}
	return req.URL, nil
}

// Resolver picks a download URL for a file, preferring presigned S3 links
// and falling back to the file's public fallback URL.
type Resolver struct {
	client *Client
}

// NewResolver builds a resolver. When cfg is disabled or the S3 client cannot
// be created the resolver serves fallback URLs only.
func NewResolver(cfg *Config) *Resolver {
	if cfg == nil || !cfg.IsEnabled() {
		return &Resolver{}
	}
	client, err := NewClient(cfg)
	if err != nil {
		log.Warnf("[Downloads] S3 delivery unavailable, using fallback URLs: %v", err)
		return &Resolver{}
	}
	return &Resolver{client: client}
}

// ResolveURL returns the URL a purchaser should be redirected to.
func (r *Resolver) ResolveURL(ctx context.Context, file *models.DownloadFile) (string, error) {
	if r.client != nil && file.ObjectKey != "" {
		url, err := r.client.PresignDownload(ctx, file)
		if err == nil {
			return url, nil
		}
		log.Errorf("[Downloads] Presign failed for %s, falling back: %v", file.FileKey, err)
	}
	if file.FallbackURL == "" {
		return "", fmt.Errorf("no download source for file %s", file.FileKey)
	}
	return file.FallbackURL, nil
}
