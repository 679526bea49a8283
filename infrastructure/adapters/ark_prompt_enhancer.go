package adapters

import (
	"context"
	"strings"

	"generate-webstory-service/application/ports/outbound"
	"generate-webstory-service/config"
	"generate-webstory-service/domain"
)

// The 150-character/no-quotes constraint is advisory to the model and is not
// validated here; the synthesizer's sanitization and truncation are the
// enforced safety net.
const (
	titleEnhancerInstruction = "Convert this title into a visual description. " +
		"Focus on key visual elements only. " +
		"Keep it under 150 characters and as one complete sentence." +
		"Make sure that there is no single or double quotes used in the response text."

	bulletEnhancerInstruction = "Convert this news bullet point into a visual description. " +
		"Focus on key visual elements only. " +
		"Keep it under 150 characters and as one complete sentence." +
		"Make sure that there is no single or double quotes used in the response text."

	titleUserPrefix  = "I need prompt for generating cover image for news article title : "
	bulletUserPrefix = "I need prompt for generating cover image for news article : "
)

type arkPromptEnhancer struct {
	ContentFetcher
	logger    outbound.LoggerPort
	arkConfig *config.ArkConfig
}

func NewArkPromptEnhancer(fetcher ContentFetcher, arkConfig *config.ArkConfig, logger outbound.LoggerPort) outbound.PromptEnhancerPort {
	return &arkPromptEnhancer{
		ContentFetcher: fetcher,
		logger:         logger,
		arkConfig:      arkConfig,
	}
}

func (a *arkPromptEnhancer) Enhance(ctx context.Context, text string, kind domain.SlideKind) (string, error) {
	instruction := bulletEnhancerInstruction
	userPrefix := bulletUserPrefix
	if kind == domain.TitleSlideKind {
		instruction = titleEnhancerInstruction
		userPrefix = titleUserPrefix
	}

	content, err := completeChat(ctx, a.ContentFetcher, a.arkConfig, instruction, userPrefix+text)
	if err != nil {
		a.logger.ErrorWithFields(err, "failed to enhance prompt", map[string]interface{}{
			"kind": kind,
		})
		return "", err
	}

	enhanced := strings.TrimSpace(content)
	a.logger.DebugWithFields("prompt enhanced", map[string]interface{}{
		"kind":     kind,
		"original": text,
		"enhanced": enhanced,
	})

	return enhanced, nil
}
