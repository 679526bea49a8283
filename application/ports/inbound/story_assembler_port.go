package inbound

import "generate-webstory-service/domain"

// StoryAssemblerPort renders the ordered slides into a single self-contained
// HTML document that navigates itself without a server.
type StoryAssemblerPort interface {
	Assemble(title string, slides []domain.SlideWithImage) (string, error)
}
