package outbound

import (
	"context"

	"generate-webstory-service/domain"
)

// SummarizerPort turns free article text into a title and an ordered bullet
// list. An empty title or an empty bullet list is a valid response shape;
// callers decide whether that is acceptable.
type SummarizerPort interface {
	Summarize(ctx context.Context, articleText string) (domain.Summary, error)
}
