package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"

	"generate-webstory-service/application/ports/outbound"
	"generate-webstory-service/config"
)

type s3StoryStore struct {
	s3Svc         *s3.S3
	storageConfig *config.StorageConfig
	logger        outbound.LoggerPort
}

func NewS3StoryStore(s3Svc *s3.S3, storageConfig *config.StorageConfig, logger outbound.LoggerPort) outbound.StoryStorePort {
	return &s3StoryStore{
		s3Svc:         s3Svc,
		storageConfig: storageConfig,
		logger:        logger,
	}
}

func (s *s3StoryStore) Put(ctx context.Context, content []byte, key string) (string, error) {
	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.storageConfig.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String("text/html; charset=utf-8"),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "failed to upload story document", map[string]interface{}{
			"bucket": s.storageConfig.BucketName,
			"key":    key,
		})
		return "", err
	}

	publicURL := fmt.Sprintf("https://%s.%s/%s", s.storageConfig.BucketName, s.storageConfig.Endpoint, key)
	s.logger.DebugWithFields("story document uploaded", map[string]interface{}{
		"public_url": publicURL,
	})

	return publicURL, nil
}
