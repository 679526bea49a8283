package inbound

import (
	"context"

	"generate-webstory-service/domain"
)

type StartPipelineParams struct {
	StoryID     string
	ArticleText string
	Title       string
	Bullets     []string
}

type WebstoryPipelinePort interface {
	StartPipeline(ctx context.Context, params StartPipelineParams) (*domain.Story, error)
}
