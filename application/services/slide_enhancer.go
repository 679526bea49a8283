package services

import (
	"context"
	"sync"

	"generate-webstory-service/application/ports/inbound"
	"generate-webstory-service/application/ports/outbound"
	"generate-webstory-service/domain"
)

type slideEnhancer struct {
	logger           outbound.LoggerPort
	promptEnhancer   outbound.PromptEnhancerPort
	imageSynthesizer outbound.ImageSynthesizerPort
	workerPool       outbound.TaskDispatcher
}

func NewSlideEnhancer(logger outbound.LoggerPort, promptEnhancer outbound.PromptEnhancerPort,
	imageSynthesizer outbound.ImageSynthesizerPort, workerPool outbound.TaskDispatcher) inbound.SlideEnhancerPort {
	return &slideEnhancer{
		logger:           logger,
		promptEnhancer:   promptEnhancer,
		imageSynthesizer: imageSynthesizer,
		workerPool:       workerPool,
	}
}

// Enhance fans slides out across the worker pool. Each slide is enhanced and
// synthesized independently; the first failure cancels the remaining work.
func (s *slideEnhancer) Enhance(ctx context.Context, slideCh <-chan domain.Slide) (<-chan domain.SlideWithImage, <-chan error) {
	out := make(chan domain.SlideWithImage)
	errCh := make(chan error, 8)

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()

		var wg sync.WaitGroup

		for slide := range slideCh {
			select {
			case <-newCtx.Done():
				wg.Wait()
				return
			default:
			}

			slide := slide
			wg.Add(1)
			err := s.workerPool.Submit(func() {
				defer wg.Done()

				enhanced, err := s.enhanceSlide(newCtx, slide)
				if err != nil {
					errCh <- err
					cancel()
					return
				}

				select {
				case <-newCtx.Done():
				case out <- enhanced:
				}
			})
			if err != nil {
				wg.Done()
				errCh <- err
				cancel()
			}
		}

		wg.Wait()
	})
	if err != nil {
		errCh <- err
	}

	return out, errCh
}

func (s *slideEnhancer) enhanceSlide(ctx context.Context, slide domain.Slide) (domain.SlideWithImage, error) {
	prompt, err := s.promptEnhancer.Enhance(ctx, slide.SourceText, slide.Kind)
	if err != nil {
		s.logger.ErrorWithFields(err, "failed to enhance prompt", map[string]interface{}{
			"story_id": slide.StoryID,
			"index":    slide.Index,
		})
		return domain.SlideWithImage{}, &PromptError{SlideIndex: slide.Index, Err: err}
	}

	imageURL, err := s.imageSynthesizer.Synthesize(ctx, prompt, slide.Kind)
	if err != nil {
		s.logger.ErrorWithFields(err, "failed to synthesize image", map[string]interface{}{
			"story_id": slide.StoryID,
			"index":    slide.Index,
		})
		return domain.SlideWithImage{}, &SynthesisError{SlideIndex: slide.Index, Err: err}
	}

	s.logger.DebugWithFields("slide image ready", map[string]interface{}{
		"story_id": slide.StoryID,
		"index":    slide.Index,
		"kind":     slide.Kind,
	})

	return domain.SlideWithImage{
		EnhancedPrompt: prompt,
		ImageURL:       imageURL,
		Slide:          slide,
	}, nil
}
