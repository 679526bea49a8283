package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"generate-webstory-service/application/ports/inbound"
	"generate-webstory-service/application/ports/outbound"
	"generate-webstory-service/channel_utils"
	"generate-webstory-service/domain"
)

const (
	storageTimestampLayout = "20060102150405"
	maxKeyTitleLength      = 50
)

type webstoryPipeline struct {
	logger        outbound.LoggerPort
	workerPool    outbound.TaskDispatcher
	summarizer    outbound.SummarizerPort
	slideBuilder  inbound.SlideBuilderPort
	slideEnhancer inbound.SlideEnhancerPort
	assembler     inbound.StoryAssemblerPort
	storyStore    outbound.StoryStorePort
	storyCache    outbound.StoryCachePort
	keyPrefix     string
}

func NewWebstoryPipeline(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	summarizer outbound.SummarizerPort, slideBuilder inbound.SlideBuilderPort,
	slideEnhancer inbound.SlideEnhancerPort, assembler inbound.StoryAssemblerPort,
	storyStore outbound.StoryStorePort, storyCache outbound.StoryCachePort,
	keyPrefix string) inbound.WebstoryPipelinePort {
	return &webstoryPipeline{
		logger:        logger,
		workerPool:    workerPool,
		summarizer:    summarizer,
		slideBuilder:  slideBuilder,
		slideEnhancer: slideEnhancer,
		assembler:     assembler,
		storyStore:    storyStore,
		storyCache:    storyCache,
		keyPrefix:     keyPrefix,
	}
}

// StartPipeline runs summarization (when needed), slide generation, document
// assembly and persistence. The store write is the single commit point: any
// earlier failure means nothing was persisted.
func (w *webstoryPipeline) StartPipeline(ctx context.Context, params inbound.StartPipelineParams) (*domain.Story, error) {
	title := strings.TrimSpace(params.Title)
	bullets := nonEmptyBullets(params.Bullets)

	if params.ArticleText != "" && (title == "" || len(bullets) == 0) {
		summary, err := w.summarizer.Summarize(ctx, params.ArticleText)
		if err != nil {
			return nil, &SummarizationError{Err: err}
		}
		if title == "" {
			title = strings.TrimSpace(summary.Title)
		}
		if len(bullets) == 0 {
			bullets = nonEmptyBullets(summary.Bullets)
		}
	}

	if title == "" {
		return nil, ErrMissingTitle
	}
	if len(bullets) == 0 {
		return nil, ErrNoBullets
	}

	slides, err := w.generateSlides(ctx, params.StoryID, title, bullets)
	if err != nil {
		return nil, err
	}

	documentHTML, err := w.assembler.Assemble(title, slides)
	if err != nil {
		return nil, err
	}

	key := w.objectKey(title)
	publicURL, err := w.storyStore.Put(ctx, []byte(documentHTML), key)
	if err != nil {
		return nil, &StorageError{Key: key, Err: err}
	}

	story := &domain.Story{
		ID:           params.StoryID,
		Title:        title,
		Slides:       slides,
		DocumentHTML: documentHTML,
		PublicURL:    publicURL,
		DownloadURL:  publicURL,
	}

	if err := w.storyCache.Save(ctx, *story); err != nil {
		return nil, &StorageError{Key: key, Err: err}
	}

	w.logger.InfoWithFields("story published", map[string]interface{}{
		"story_id":    story.ID,
		"slide_count": len(story.Slides),
		"public_url":  story.PublicURL,
	})

	return story, nil
}

// generateSlides drives the builder and enhancer stages and reassembles the
// results strictly by slide index, never by completion order.
func (w *webstoryPipeline) generateSlides(ctx context.Context, storyID string, title string, bullets []string) ([]domain.SlideWithImage, error) {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	slideCh, builderErrCh := w.slideBuilder.Build(newCtx, inbound.BuildSlidesParams{
		StoryID: storyID,
		Title:   title,
		Bullets: bullets,
	})

	enhancedCh, enhancerErrCh := w.slideEnhancer.Enhance(newCtx, slideCh)

	mergedErrCh, err := channel_utils.MergeChannels(w.workerPool, builderErrCh, enhancerErrCh)
	if err != nil {
		return nil, err
	}

	expected := 1 + len(bullets)
	slides := make([]domain.SlideWithImage, expected)
	received := 0

	for enhancedCh != nil {
		select {
		case err, ok := <-mergedErrCh:
			if ok && err != nil {
				return nil, err
			}
			if !ok {
				mergedErrCh = nil
			}
		case slide, ok := <-enhancedCh:
			if !ok {
				enhancedCh = nil
				break
			}
			if slide.Index < 0 || slide.Index >= expected {
				return nil, fmt.Errorf("slide index %d out of range for %d slides", slide.Index, expected)
			}
			slides[slide.Index] = slide
			received++
		}
	}

	if mergedErrCh != nil {
		for err := range mergedErrCh {
			if err != nil {
				return nil, err
			}
		}
	}

	if received != expected {
		return nil, fmt.Errorf("expected %d slides, received %d", expected, received)
	}

	return slides, nil
}

func (w *webstoryPipeline) objectKey(title string) string {
	timestamp := time.Now().Format(storageTimestampLayout)
	return fmt.Sprintf("%s/webstories/%s_%s.html", w.keyPrefix, timestamp, sanitizeKeyTitle(title))
}

// sanitizeKeyTitle replaces every non-alphanumeric rune with an underscore
// and truncates the result to 50 characters.
func sanitizeKeyTitle(title string) string {
	var builder strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		} else {
			builder.WriteByte('_')
		}
	}

	cleaned := []rune(builder.String())
	if len(cleaned) > maxKeyTitleLength {
		cleaned = cleaned[:maxKeyTitleLength]
	}
	return string(cleaned)
}

func nonEmptyBullets(bullets []string) []string {
	result := make([]string, 0, len(bullets))
	for _, bullet := range bullets {
		if trimmed := strings.TrimSpace(bullet); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
