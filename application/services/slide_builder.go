package services

import (
	"context"

	"generate-webstory-service/application/ports/inbound"
	"generate-webstory-service/application/ports/outbound"
	"generate-webstory-service/domain"
)

type slideBuilder struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
}

func NewSlideBuilder(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher) inbound.SlideBuilderPort {
	return &slideBuilder{
		logger:     logger,
		workerPool: workerPool,
	}
}

func (s *slideBuilder) Build(ctx context.Context, params inbound.BuildSlidesParams) (<-chan domain.Slide, <-chan error) {
	out := make(chan domain.Slide)
	errCh := make(chan error, 1)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)

		slides := make([]domain.Slide, 0, 1+len(params.Bullets))
		slides = append(slides, domain.NewSlide(0, domain.TitleSlideKind, params.Title, params.StoryID))
		for i, bullet := range params.Bullets {
			slides = append(slides, domain.NewSlide(i+1, domain.BodySlideKind, bullet, params.StoryID))
		}

		for _, slide := range slides {
			s.logger.DebugWithFields("built slide", map[string]interface{}{
				"story_id": slide.StoryID,
				"index":    slide.Index,
				"kind":     slide.Kind,
			})
			select {
			case <-ctx.Done():
				return
			case out <- slide:
			}
		}
	})
	if err != nil {
		errCh <- err
	}

	return out, errCh
}
