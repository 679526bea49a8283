package outbound

import "context"

// StoryStorePort stores bytes at a key and returns the public URL of the
// stored object. The write is the single commit point of the pipeline.
type StoryStorePort interface {
	Put(ctx context.Context, content []byte, key string) (string, error)
}
