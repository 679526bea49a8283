package domain

import "testing"

func TestNavigation_NextWrapsAround(t *testing.T) {
	const slideCount = 4

	nav, err := NewNavigation(slideCount)
	if err != nil {
		t.Fatal("failed to create navigation:", err)
	}

	for i := 1; i < slideCount; i++ {
		nav = nav.Next()
		if nav.Current() != i {
			t.Fatalf("after %d Next calls expected index %d, got %d", i, i, nav.Current())
		}
	}

	nav = nav.Next()
	if nav.Current() != 0 {
		t.Fatalf("expected Next to wrap to 0, got %d", nav.Current())
	}
}

func TestNavigation_PrevWrapsToLastSlide(t *testing.T) {
	const slideCount = 5

	nav, err := NewNavigation(slideCount)
	if err != nil {
		t.Fatal("failed to create navigation:", err)
	}

	nav = nav.Prev()
	if nav.Current() != slideCount-1 {
		t.Fatalf("expected Prev from 0 to yield %d, got %d", slideCount-1, nav.Current())
	}
}

func TestNavigation_SingleSlide(t *testing.T) {
	nav, err := NewNavigation(1)
	if err != nil {
		t.Fatal("failed to create navigation:", err)
	}

	if nav.Next().Current() != 0 {
		t.Fatal("single slide Next should stay at 0")
	}
	if nav.Prev().Current() != 0 {
		t.Fatal("single slide Prev should stay at 0")
	}
}

func TestNavigation_RejectsEmptySlideList(t *testing.T) {
	if _, err := NewNavigation(0); err == nil {
		t.Fatal("expected an error for zero slides")
	}
}
