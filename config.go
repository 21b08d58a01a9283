package carlist

import (
	"errors"
	"time"
)

// Config holds the externally supplied settings for the service. There
// is no default for UploadURLTTL: the presigned-URL lifetime must be
// explicit configuration.
type Config struct {
	// TableName is the DynamoDB table holding listing records.
	TableName string

	// BucketName is the S3 bucket holding listing attachments.
	BucketName string

	// UploadURLTTL is the lifetime of issued presigned upload URLs.
	UploadURLTTL time.Duration
}

// Validate checks that all required settings are present.
func (c Config) Validate() error {
	if c.TableName == "" {
		return errors.New("carlist: table name is required")
	}
	if c.BucketName == "" {
		return errors.New("carlist: bucket name is required")
	}
	if c.UploadURLTTL <= 0 {
		return errors.New("carlist: upload URL TTL must be positive")
	}
	return nil
}
