package domain

import "fmt"

// Navigation tracks which slide of a story is currently displayed.
// Transitions wrap around in both directions; there is no terminal state.
type Navigation struct {
	currentIndex int
	slideCount   int
}

func NewNavigation(slideCount int) (Navigation, error) {
	if slideCount < 1 {
		return Navigation{}, fmt.Errorf("navigation requires at least one slide, got %d", slideCount)
	}
	return Navigation{slideCount: slideCount}, nil
}

func (n Navigation) Current() int {
	return n.currentIndex
}

func (n Navigation) SlideCount() int {
	return n.slideCount
}

func (n Navigation) Next() Navigation {
	n.currentIndex = (n.currentIndex + 1) % n.slideCount
	return n
}

func (n Navigation) Prev() Navigation {
	n.currentIndex = (n.currentIndex - 1 + n.slideCount) % n.slideCount
	return n
}
