package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"generate-webstory-service/application/ports/outbound"
	"generate-webstory-service/config"
	"generate-webstory-service/domain"
)

type dynamoStoryItem struct {
	StoryID    string `dynamodbav:"story_id"`
	Title      string `dynamodbav:"title"`
	PublicURL  string `dynamodbav:"public_url"`
	SlideCount int    `dynamodbav:"slide_count"`
	CreatedAt  string `dynamodbav:"created_at"`
	TTL        int64  `dynamodbav:"ttl"`
}

type dynamoStoryCache struct {
	logger         outbound.LoggerPort
	dynamoSvc      *dynamodb.DynamoDB
	metadataConfig *config.MetadataConfig
}

func NewDynamoStoryCache(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB,
	metadataConfig *config.MetadataConfig) outbound.StoryCachePort {
	return &dynamoStoryCache{
		logger:         logger,
		dynamoSvc:      dynamoSvc,
		metadataConfig: metadataConfig,
	}
}

func (c *dynamoStoryCache) Save(ctx context.Context, story domain.Story) error {
	now := time.Now()
	item := dynamoStoryItem{
		StoryID:    story.ID,
		Title:      story.Title,
		PublicURL:  story.PublicURL,
		SlideCount: len(story.Slides),
		CreatedAt:  now.UTC().Format(time.RFC3339),
		TTL:        now.Add(time.Duration(c.metadataConfig.TtlMinutes) * time.Minute).Unix(),
	}

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.ErrorWithFields(err, "failed to marshal story item", map[string]interface{}{
			"story_id": story.ID,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.metadataConfig.TableName),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "failed to save story item", map[string]interface{}{
			"story_id": story.ID,
		})
		return err
	}

	return nil
}
