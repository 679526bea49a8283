package services

import (
	"errors"
	"fmt"
)

// Validation failures are detected before any upstream call is made.
var (
	ErrMissingTitle = errors.New("a story title is required and none was provided or summarized")
	ErrNoBullets    = errors.New("at least one non-empty bullet point is required")
)

type SummarizationError struct {
	Err error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("failed to summarize article: %v", e.Err)
}

func (e *SummarizationError) Unwrap() error { return e.Err }

type PromptError struct {
	SlideIndex int
	Err        error
}

func (e *PromptError) Error() string {
	return fmt.Sprintf("failed to enhance prompt for slide %d: %v", e.SlideIndex, e.Err)
}

func (e *PromptError) Unwrap() error { return e.Err }

type SynthesisError struct {
	SlideIndex int
	Err        error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("failed to synthesize image for slide %d: %v", e.SlideIndex, e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }

type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to persist story at %q: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
