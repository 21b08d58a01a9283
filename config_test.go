package carlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		TableName:    "cars",
		BucketName:   "car-images",
		UploadURLTTL: 5 * time.Minute,
	}
	assert.NoError(t, valid.Validate())
}

func TestConfig_Validate_MissingTable(t *testing.T) {
	cfg := Config{
		BucketName:   "car-images",
		UploadURLTTL: 5 * time.Minute,
	}
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_MissingBucket(t *testing.T) {
	cfg := Config{
		TableName:    "cars",
		UploadURLTTL: 5 * time.Minute,
	}
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_TTLRequired(t *testing.T) {
	// The URL lifetime has no default; zero and negative are both rejected
	cfg := Config{
		TableName:  "cars",
		BucketName: "car-images",
	}
	assert.Error(t, cfg.Validate())

	cfg.UploadURLTTL = -time.Minute
	assert.Error(t, cfg.Validate())
}
