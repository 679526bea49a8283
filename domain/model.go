package domain

type SlideKind string

const (
	TitleSlideKind SlideKind = "title"
	BodySlideKind  SlideKind = "body"
)

func NewSlide(index int, kind SlideKind, sourceText string, storyID string) Slide {
	return Slide{
		Index:      index,
		Kind:       kind,
		SourceText: sourceText,
		StoryID:    storyID,
	}
}

// Slide 0 is always the title slide; body slides follow in bullet order.
type Slide struct {
	Index      int
	Kind       SlideKind
	SourceText string
	StoryID    string
}

type SlideWithImage struct {
	EnhancedPrompt string
	ImageURL       string
	Slide
}

type Summary struct {
	Title   string
	Bullets []string
}

// Story is finalized (document and URLs populated) only when the whole
// pipeline succeeded. A partially built story is never persisted.
type Story struct {
	ID           string
	Title        string
	Slides       []SlideWithImage
	DocumentHTML string
	PublicURL    string
	DownloadURL  string
}
