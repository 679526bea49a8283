package outbound

import (
	"context"

	"generate-webstory-service/domain"
)

// ImageSynthesizerPort generates a hosted image for a visual prompt and
// returns its URL.
type ImageSynthesizerPort interface {
	Synthesize(ctx context.Context, prompt string, kind domain.SlideKind) (string, error)
}
