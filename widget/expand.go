package widget

// ExpandScrollDelayMillis is how long the client waits after toggling an
// expandable card before scrolling it into view. The delay matches the CSS
// height transition so the scroll measures the card's final size, not its
// pre-transition size.
const ExpandScrollDelayMillis = 180

// DualSide identifies which half of a dual-expandable card is open.
type DualSide int

const (
	DualNone DualSide = iota
	DualLeft
	DualRight
)

// ParseDualSide maps the query value a fragment request carries. Anything
// unrecognized collapses both panels.
func ParseDualSide(s string) DualSide {
	switch s {
	case "left":
		return DualLeft
	case "right":
		return DualRight
	}
	return DualNone
}

func (s DualSide) String() string {
	switch s {
	case DualLeft:
		return "left"
	case DualRight:
		return "right"
	}
	return "none"
}

// DualExpandable couples two sibling panels so that expanding one collapses
// the other in the same update. Both collapsed is valid; both expanded is
// unreachable.
type DualExpandable struct {
	Open DualSide
}

// ToggleLeft expands the left panel, or collapses it if already open.
func (d *DualExpandable) ToggleLeft() {
	if d.Open == DualLeft {
		d.Open = DualNone
		return
	}
	d.Open = DualLeft
}

// ToggleRight expands the right panel, or collapses it if already open.
func (d *DualExpandable) ToggleRight() {
	if d.Open == DualRight {
		d.Open = DualNone
		return
	}
	d.Open = DualRight
}

func (d DualExpandable) LeftOpen() bool  { return d.Open == DualLeft }
func (d DualExpandable) RightOpen() bool { return d.Open == DualRight }
