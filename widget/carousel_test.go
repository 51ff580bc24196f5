package widget

import "testing"

func TestPerViewFor(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{320, 1},
		{639, 1},
		{640, 2},
		{1023, 2},
		{1024, 3},
		{1920, 3},
	}
	for _, tt := range tests {
		if got := PerViewFor(tt.width); got != tt.want {
			t.Errorf("PerViewFor(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestPagedCarouselNextClampsAtEnd(t *testing.T) {
	c := NewPagedCarousel(7, 3, 0)

	c.Next()
	if c.Index != 3 {
		t.Fatalf("after first Next, Index = %d, want 3", c.Index)
	}
	c.Next()
	if c.Index != 4 {
		t.Fatalf("after second Next, Index = %d, want 4 (count-perView)", c.Index)
	}
	c.Next()
	if c.Index != 4 {
		t.Fatalf("Next at max should be a no-op, Index = %d", c.Index)
	}
	if !c.AtEnd() {
		t.Error("AtEnd should be true at max index")
	}
}

func TestPagedCarouselPrevClampsAtStart(t *testing.T) {
	c := NewPagedCarousel(7, 3, 4)

	c.Prev()
	if c.Index != 1 {
		t.Fatalf("after Prev, Index = %d, want 1", c.Index)
	}
	c.Prev()
	if c.Index != 0 {
		t.Fatalf("after second Prev, Index = %d, want 0", c.Index)
	}
	c.Prev()
	if c.Index != 0 {
		t.Fatalf("Prev at 0 should be a no-op, Index = %d", c.Index)
	}
	if !c.AtStart() {
		t.Error("AtStart should be true at index 0")
	}
}

func TestPagedCarouselStaysInRange(t *testing.T) {
	// Any sequence of next/prev keeps the index within
	// [0, max(0, count-perView)] for every supported page size.
	for _, perView := range []int{1, 2, 3} {
		for count := 1; count <= 10; count++ {
			c := NewPagedCarousel(count, perView, 0)
			max := count - perView
			if max < 0 {
				max = 0
			}
			ops := []func(){c.Next, c.Next, c.Prev, c.Next, c.Prev, c.Prev, c.Prev, c.Next}
			for i, op := range ops {
				op()
				if c.Index < 0 || c.Index > max {
					t.Fatalf("count=%d perView=%d op %d: Index %d out of [0,%d]",
						count, perView, i, c.Index, max)
				}
			}
		}
	}
}

func TestPagedCarouselFewerItemsThanPage(t *testing.T) {
	c := NewPagedCarousel(2, 3, 0)
	c.Next()
	if c.Index != 0 {
		t.Errorf("Next with count < perView should stay at 0, got %d", c.Index)
	}
	if c.Pages() != 1 {
		t.Errorf("Pages = %d, want 1", c.Pages())
	}
}

func TestPagedCarouselJumpTo(t *testing.T) {
	c := NewPagedCarousel(9, 3, 0)
	c.JumpTo(2)
	if c.Index != 6 {
		t.Errorf("JumpTo(2) Index = %d, want 6", c.Index)
	}
	c.JumpTo(99)
	if c.Index != 6 {
		t.Errorf("JumpTo past end should clamp to 6, got %d", c.Index)
	}
	c.JumpTo(-1)
	if c.Index != 0 {
		t.Errorf("JumpTo(-1) should clamp to 0, got %d", c.Index)
	}
}

func TestPagedCarouselReclampAfterResize(t *testing.T) {
	// Mid-carousel at index 6 of 8 with 3 per view; shrinking to 1 per
	// view keeps the left-most item, growing to 3 re-clamps into range.
	c := NewPagedCarousel(8, 3, 6)
	if c.Index != 5 {
		t.Fatalf("initial clamp: Index = %d, want 5", c.Index)
	}

	c.SetPerView(1)
	if c.Index != 5 {
		t.Errorf("shrink should keep left-most item, Index = %d, want 5", c.Index)
	}

	c.Index = 7 // last item visible at perView 1
	c.SetPerView(3)
	if c.Index != 5 {
		t.Errorf("grow should re-clamp to count-perView, Index = %d, want 5", c.Index)
	}
}

func TestPagedCarouselUntrustedInitialIndex(t *testing.T) {
	if c := NewPagedCarousel(5, 2, 999); c.Index != 3 {
		t.Errorf("oversized index should clamp to 3, got %d", c.Index)
	}
	if c := NewPagedCarousel(5, 2, -4); c.Index != 0 {
		t.Errorf("negative index should clamp to 0, got %d", c.Index)
	}
}

func TestInfoCarouselAdvanceWrapsAround(t *testing.T) {
	c := NewInfoCarousel(3, 1)
	for k := 1; k <= 7; k++ {
		c.Advance()
		want := (1 + k) % 3
		if c.Index != want {
			t.Fatalf("after %d advances, Index = %d, want %d", k, c.Index, want)
		}
	}
}

func TestInfoCarouselPauseBlocksAdvance(t *testing.T) {
	c := NewInfoCarousel(4, 0)
	c.Pause()
	c.Advance()
	c.Advance()
	if c.Index != 0 {
		t.Fatalf("paused carousel advanced to %d", c.Index)
	}
	c.Resume()
	c.Advance()
	if c.Index != 1 {
		t.Fatalf("after resume, Index = %d, want 1", c.Index)
	}
}

func TestInfoCarouselManualMovesWhilePaused(t *testing.T) {
	c := NewInfoCarousel(3, 0)
	c.Pause()
	c.Next()
	if c.Index != 1 || c.Direction != 1 {
		t.Errorf("Next while paused: Index = %d dir = %d, want 1, 1", c.Index, c.Direction)
	}
	c.Prev()
	c.Prev()
	if c.Index != 2 || c.Direction != -1 {
		t.Errorf("Prev wraparound: Index = %d dir = %d, want 2, -1", c.Index, c.Direction)
	}
}

func TestInfoCarouselJumpToSetsDirection(t *testing.T) {
	c := NewInfoCarousel(5, 2)
	c.JumpTo(4)
	if c.Index != 4 || c.Direction != 1 {
		t.Errorf("forward jump: Index = %d dir = %d", c.Index, c.Direction)
	}
	c.JumpTo(1)
	if c.Index != 1 || c.Direction != -1 {
		t.Errorf("backward jump: Index = %d dir = %d", c.Index, c.Direction)
	}
}

func TestInfoCarouselEmpty(t *testing.T) {
	c := NewInfoCarousel(0, 0)
	c.Advance()
	c.Next()
	c.Prev()
	c.JumpTo(3)
	if c.Index != 0 {
		t.Errorf("empty carousel moved to %d", c.Index)
	}
}

func TestDocCarouselWrapsBothEnds(t *testing.T) {
	c := NewDocCarousel(3, 0)
	c.Prev()
	if c.Index != 2 {
		t.Fatalf("Prev from 0 should wrap to 2, got %d", c.Index)
	}
	c.Next()
	if c.Index != 0 {
		t.Fatalf("Next from last should wrap to 0, got %d", c.Index)
	}
}

func TestDocCarouselInitialClamp(t *testing.T) {
	if c := NewDocCarousel(3, 9); c.Index != 2 {
		t.Errorf("out-of-range initial index should land on last, got %d", c.Index)
	}
	if c := NewDocCarousel(3, -2); c.Index != 0 {
		t.Errorf("negative initial index should land on first, got %d", c.Index)
	}
}
