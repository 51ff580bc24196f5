// Package widget holds the pure state machines behind the guide's
// interactive cards. Handlers and the embedded client script drive these;
// nothing here touches the DOM or the network.
package widget

// Viewport breakpoints for the paged carousel, in CSS pixels.
const (
	SmallBreakpoint  = 640
	MediumBreakpoint = 1024
)

// PerViewFor derives how many action items are visible at once from the
// viewport width: 1 below the small breakpoint, 2 below the medium one,
// else 3.
func PerViewFor(viewportWidth int) int {
	switch {
	case viewportWidth < SmallBreakpoint:
		return 1
	case viewportWidth < MediumBreakpoint:
		return 2
	default:
		return 3
	}
}

// PagedCarousel pages through a fixed item list, PerView at a time.
// Index is the 0-based position of the left-most visible item and always
// stays within [0, max(0, Count-PerView)].
type PagedCarousel struct {
	Index   int
	PerView int
	Count   int
}

// NewPagedCarousel clamps the given index into the valid range, so callers
// can feed untrusted query values straight in.
func NewPagedCarousel(count, perView, index int) PagedCarousel {
	if perView < 1 {
		perView = 1
	}
	c := PagedCarousel{PerView: perView, Count: count}
	c.Index = c.clamp(index)
	return c
}

func (c PagedCarousel) maxIndex() int {
	m := c.Count - c.PerView
	if m < 0 {
		return 0
	}
	return m
}

func (c PagedCarousel) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if m := c.maxIndex(); i > m {
		return m
	}
	return i
}

// Next advances by one page. At the maximum index it is a no-op.
func (c *PagedCarousel) Next() {
	c.Index = c.clamp(c.Index + c.PerView)
}

// Prev steps back one page. At index 0 it is a no-op.
func (c *PagedCarousel) Prev() {
	c.Index = c.clamp(c.Index - c.PerView)
}

// JumpTo sets the index to the given page's start.
func (c *PagedCarousel) JumpTo(page int) {
	if page < 0 {
		page = 0
	}
	c.Index = c.clamp(page * c.PerView)
}

// SetPerView recomputes the page size after a viewport resize. The visible
// window anchors to the same left-most item, then re-clamps into the new
// valid range — it does not snap to page boundaries.
func (c *PagedCarousel) SetPerView(perView int) {
	if perView < 1 {
		perView = 1
	}
	c.PerView = perView
	c.Index = c.clamp(c.Index)
}

// Pages is the number of pagination dots.
func (c PagedCarousel) Pages() int {
	if c.Count <= 0 {
		return 0
	}
	return (c.Count + c.PerView - 1) / c.PerView
}

// Page is the current page number, 0-based.
func (c PagedCarousel) Page() int {
	return c.Index / c.PerView
}

// AtStart and AtEnd report whether prev/next are no-ops, for disabling
// the matching controls.
func (c PagedCarousel) AtStart() bool { return c.Index == 0 }
func (c PagedCarousel) AtEnd() bool   { return c.Index >= c.maxIndex() }

// InfoCarousel shows one slide at a time and auto-advances with
// wraparound. Direction only drives the slide-in animation; it has no
// functional effect on which slide is shown.
type InfoCarousel struct {
	Index     int
	Direction int // +1 forward, -1 backward
	Paused    bool
	Count     int
}

// NewInfoCarousel starts at the given index modulo the slide count.
func NewInfoCarousel(count, index int) InfoCarousel {
	c := InfoCarousel{Count: count, Direction: 1}
	if count > 0 {
		c.Index = ((index % count) + count) % count
	}
	return c
}

// Advance is the auto-advance tick: one step forward with wraparound.
// A paused carousel does not move.
func (c *InfoCarousel) Advance() {
	if c.Paused || c.Count == 0 {
		return
	}
	c.Index = (c.Index + 1) % c.Count
	c.Direction = 1
}

// Next and Prev are the manual controls; they move even while paused.
func (c *InfoCarousel) Next() {
	if c.Count == 0 {
		return
	}
	c.Index = (c.Index + 1) % c.Count
	c.Direction = 1
}

func (c *InfoCarousel) Prev() {
	if c.Count == 0 {
		return
	}
	c.Index = (c.Index - 1 + c.Count) % c.Count
	c.Direction = -1
}

// JumpTo picks a slide directly, deriving the animation direction from the
// relative position. Jumping to the current slide keeps the direction.
func (c *InfoCarousel) JumpTo(i int) {
	if c.Count == 0 {
		return
	}
	i = ((i % c.Count) + c.Count) % c.Count
	switch {
	case i > c.Index:
		c.Direction = 1
	case i < c.Index:
		c.Direction = -1
	}
	c.Index = i
}

// Pause suspends auto-advance (pointer hover); Resume lifts it.
func (c *InfoCarousel) Pause()  { c.Paused = true }
func (c *InfoCarousel) Resume() { c.Paused = false }

// DocCarousel pages through a fixed list of documents, wrapping at both
// ends. All documents stay rendered with only the active one visible, so
// switching never reloads an embed.
type DocCarousel struct {
	Index int
	Count int
}

// NewDocCarousel clamps the index into range (no modulo — an out-of-range
// initial value lands on the nearest end).
func NewDocCarousel(count, index int) DocCarousel {
	c := DocCarousel{Count: count}
	if index > 0 {
		if index >= count {
			index = count - 1
		}
		c.Index = index
	}
	return c
}

// Next wraps from the last document back to the first.
func (c *DocCarousel) Next() {
	if c.Count == 0 {
		return
	}
	c.Index = (c.Index + 1) % c.Count
}

// Prev wraps from the first document to the last.
func (c *DocCarousel) Prev() {
	if c.Count == 0 {
		return
	}
	c.Index = (c.Index - 1 + c.Count) % c.Count
}
