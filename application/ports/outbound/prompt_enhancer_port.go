package outbound

import (
	"context"

	"generate-webstory-service/domain"
)

type PromptEnhancerPort interface {
	Enhance(ctx context.Context, text string, kind domain.SlideKind) (string, error)
}
