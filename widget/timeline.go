package widget

// Timeline activation tuning. The client observes section anchors against
// a top-weighted band and reports near-bottom separately; these constants
// are also exposed to the script via data attributes so both sides agree.
const (
	// TimelineTopBandPercent is how far down the viewport a section's
	// anchor may sit while still counting as "active".
	TimelineTopBandPercent = 40

	// TimelineBottomThresholdPx force-activates the last section once the
	// page is scrolled this close to the document bottom. Without it a
	// short final section would never highlight.
	TimelineBottomThresholdPx = 150

	// TimelineScrollOffsetPx is the fixed top offset for click-to-scroll,
	// clearing the sticky tab bar.
	TimelineScrollOffsetPx = 96
)

// ActiveSection resolves which timeline node to highlight. Precedence:
// near-bottom wins and forces the last section; otherwise the first
// intersecting section in document order; otherwise empty, meaning the
// caller keeps its current highlight.
func ActiveSection(order []string, visible map[string]bool, nearBottom bool) string {
	if len(order) == 0 {
		return ""
	}
	if nearBottom {
		return order[len(order)-1]
	}
	for _, id := range order {
		if visible[id] {
			return id
		}
	}
	return ""
}
