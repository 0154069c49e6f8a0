package downloads

import (
	"errors"

	"github.com/musickeys/backend/internal/pkg/env"
)

// Config holds S3 download delivery configuration
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
	Enabled         bool
	LinkTTLSeconds  int
}

// DefaultLinkTTLSeconds is how long a presigned download URL stays valid.
const DefaultLinkTTLSeconds = 300

// LoadConfig loads S3 download configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "us-west-001"),
		BucketName:      env.GetEnv("S3_BUCKET_NAME", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		Enabled:         env.GetEnv("S3_DOWNLOADS_ENABLED", "false") == "true",
		LinkTTLSeconds:  DefaultLinkTTLSeconds,
	}

	// Validate required fields if S3 delivery is enabled
	if config.Enabled {
		if config.AccessKeyID == "" {
			return nil, errors.New("S3_ACCESS_KEY_ID is required when S3 downloads are enabled")
		}
		if config.SecretAccessKey == "" {
			return nil, errors.New("S3_SECRET_ACCESS_KEY is required when S3 downloads are enabled")
		}
		if config.BucketName == "" {
			return nil, errors.New("S3_BUCKET_NAME is required when S3 downloads are enabled")
		}
	}

	return config, nil
}

// IsEnabled returns true if S3 download delivery is enabled
func (c *Config) IsEnabled() bool {
	return c.Enabled
}

// GetBucketName returns the bucket name as configured (no automatic prefixing)
func (c *Config) GetBucketName() string {
	return c.BucketName
}
