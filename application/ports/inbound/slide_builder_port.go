package inbound

import (
	"context"

	"generate-webstory-service/domain"
)

type BuildSlidesParams struct {
	StoryID string
	Title   string
	Bullets []string
}

// SlideBuilderPort emits the ordered slide skeletons for a story: the title
// slide at index 0, then one body slide per bullet.
type SlideBuilderPort interface {
	Build(ctx context.Context, params BuildSlidesParams) (<-chan domain.Slide, <-chan error)
}
