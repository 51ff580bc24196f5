// Package layout partitions a section's ordered cards into rendered blocks:
// full-width cards stand alone, consecutive grid cards pack into two-column
// runs. Classification and span rules are pure — they never depend on
// viewport measurement — so block structure is stable across devices.
package layout

import "github.com/Sesamsesam/AI-foundations-sub000/content"

// fullWidthTypes always render as standalone blocks regardless of the
// card's own fullWidth flag.
var fullWidthTypes = map[content.CardType]struct{}{
	content.TypeSlideViewer:    {},
	content.TypeVideoEmbed:     {},
	content.TypePDFCarousel:    {},
	content.TypeActionCarousel: {},
}

// FullWidth reports whether a card renders as its own block: either its
// type is in the always-full-width set or its explicit flag is set.
func FullWidth(c content.Card) bool {
	if _, ok := fullWidthTypes[c.Type]; ok {
		return true
	}
	return c.FullWidth
}

// Cell is one card inside a grid block. SpanBoth marks cards stretched
// across both columns.
type Cell struct {
	Card     content.Card
	SpanBoth bool
}

// Block is either one full-width card (Full set, Grid nil) or a run of
// grid cells (Full nil). Blocks preserve document order.
type Block struct {
	Full *content.Card
	Grid []Cell
}

// Partition walks cards in order, accumulating consecutive grid cards into
// a pending buffer and flushing it whenever a full-width card is reached.
// An empty section yields no blocks.
func Partition(cards []content.Card) []Block {
	var blocks []Block
	var pending []content.Card

	flush := func() {
		if len(pending) == 0 {
			return
		}
		blocks = append(blocks, Block{Grid: gridCells(pending)})
		pending = nil
	}

	for _, c := range cards {
		if FullWidth(c) {
			flush()
			card := c
			blocks = append(blocks, Block{Full: &card})
			continue
		}
		pending = append(pending, c)
	}
	flush()
	return blocks
}

// gridCells applies the span rule within one flushed block: a lone card
// spans both columns, the last card of an odd-count block spans, and an
// "important" alert always spans. Packing is left-to-right in document
// order — no reordering for visual balance.
func gridCells(cards []content.Card) []Cell {
	n := len(cards)
	cells := make([]Cell, n)
	for i, c := range cards {
		span := n == 1 ||
			(n%2 == 1 && i == n-1) ||
			(c.Type == content.TypeAlert && c.AlertType == "important")
		cells[i] = Cell{Card: c, SpanBoth: span}
	}
	return cells
}

// Flatten recovers the original card order from a block sequence. Used by
// tests to assert that partitioning never reorders content.
func Flatten(blocks []Block) []content.Card {
	var cards []content.Card
	for _, b := range blocks {
		if b.Full != nil {
			cards = append(cards, *b.Full)
			continue
		}
		for _, cell := range b.Grid {
			cards = append(cards, cell.Card)
		}
	}
	return cards
}
