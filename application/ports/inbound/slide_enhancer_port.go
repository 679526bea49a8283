package inbound

import (
	"context"

	"generate-webstory-service/domain"
)

// SlideEnhancerPort attaches an enhanced visual prompt and a synthesized
// image URL to each incoming slide. Output order is not guaranteed; slides
// carry their index so consumers can reassemble the original order.
type SlideEnhancerPort interface {
	Enhance(ctx context.Context, slideCh <-chan domain.Slide) (<-chan domain.SlideWithImage, <-chan error)
}
