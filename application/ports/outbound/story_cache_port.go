package outbound

import (
	"context"

	"generate-webstory-service/domain"
)

// StoryCachePort records metadata of a published story so it can be listed
// without fetching the document itself.
type StoryCachePort interface {
	Save(ctx context.Context, story domain.Story) error
}
