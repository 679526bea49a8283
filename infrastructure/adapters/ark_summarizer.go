package adapters

import (
	"context"
	"strings"

	"generate-webstory-service/application/ports/outbound"
	"generate-webstory-service/config"
	"generate-webstory-service/domain"
)

const summarizerInstruction = "You are an expert in summarizing news article and generating article title. " +
	"Return title and summary of article in maximum 3 bullet points."

type arkSummarizer struct {
	ContentFetcher
	logger    outbound.LoggerPort
	arkConfig *config.ArkConfig
}

func NewArkSummarizer(fetcher ContentFetcher, arkConfig *config.ArkConfig, logger outbound.LoggerPort) outbound.SummarizerPort {
	return &arkSummarizer{
		ContentFetcher: fetcher,
		logger:         logger,
		arkConfig:      arkConfig,
	}
}

func (a *arkSummarizer) Summarize(ctx context.Context, articleText string) (domain.Summary, error) {
	content, err := completeChat(ctx, a.ContentFetcher, a.arkConfig, summarizerInstruction, articleText)
	if err != nil {
		a.logger.Error(err, "failed to summarize article")
		return domain.Summary{}, err
	}

	summary := parseSummary(content)
	a.logger.DebugWithFields("article summarized", map[string]interface{}{
		"title":        summary.Title,
		"bullet_count": len(summary.Bullets),
	})

	return summary, nil
}

type summaryParserState int

const (
	seekingTitle summaryParserState = iota
	collectingBullets
)

// parseSummary classifies each response line: a line carrying a "Title:"
// marker (after stripping markdown emphasis and surrounding quotes) sets the
// title, dash-prefixed lines become bullets in their original order, and
// everything else is ignored. A missing title marker yields an empty title;
// no dash lines yield an empty bullet list. Neither is an error here.
func parseSummary(content string) domain.Summary {
	var summary domain.Summary
	state := seekingTitle

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "-") {
			bullet := strings.TrimSpace(strings.TrimLeft(line, "-"))
			bullet = strings.TrimSpace(strings.ReplaceAll(bullet, "**", ""))
			if bullet != "" {
				summary.Bullets = append(summary.Bullets, bullet)
			}
			state = collectingBullets
			continue
		}

		if state == seekingTitle {
			cleaned := strings.ReplaceAll(line, "**", "")
			if _, after, found := strings.Cut(cleaned, "Title:"); found {
				summary.Title = strings.Trim(strings.TrimSpace(after), `"`)
				state = collectingBullets
			}
		}
	}

	return summary
}
