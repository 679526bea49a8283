package config

import (
	"fmt"
	"os"
)

type StorageConfig struct {
	BucketName string
	Endpoint   string
	KeyPrefix  string
	Region     string
}

func GetStorageConfig() (*StorageConfig, error) {
	bucketName := os.Getenv("BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("BUCKET_NAME must be set")
	}

	// Host only, no scheme. Also used to derive the public object URL as
	// https://{bucket}.{endpoint}/{key}.
	endpoint := os.Getenv("STORAGE_ENDPOINT")
	if endpoint == "" {
		return nil, fmt.Errorf("STORAGE_ENDPOINT must be set")
	}

	keyPrefix := os.Getenv("STORAGE_KEY_PREFIX")
	if keyPrefix == "" {
		return nil, fmt.Errorf("STORAGE_KEY_PREFIX must be set")
	}

	region := os.Getenv("REGION")
	if region == "" {
		return nil, fmt.Errorf("REGION must be set")
	}

	return &StorageConfig{
		BucketName: bucketName,
		Endpoint:   endpoint,
		KeyPrefix:  keyPrefix,
		Region:     region,
	}, nil
}
