package layout

import (
	"testing"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
)

func grid(id string) content.Card {
	return content.Card{ID: id, Type: content.TypeText}
}

func full(id string) content.Card {
	return content.Card{ID: id, Type: content.TypeVideoEmbed}
}

func TestFullWidthClassification(t *testing.T) {
	tests := []struct {
		name string
		card content.Card
		want bool
	}{
		{"slideViewer", content.Card{Type: content.TypeSlideViewer}, true},
		{"videoEmbed", content.Card{Type: content.TypeVideoEmbed}, true},
		{"pdfCarousel", content.Card{Type: content.TypePDFCarousel}, true},
		{"actionCarousel", content.Card{Type: content.TypeActionCarousel}, true},
		{"text", content.Card{Type: content.TypeText}, false},
		{"alert", content.Card{Type: content.TypeAlert}, false},
		{"text with flag", content.Card{Type: content.TypeText, FullWidth: true}, true},
		{"unknown type", content.Card{Type: "mystery"}, false},
	}
	for _, tt := range tests {
		if got := FullWidth(tt.card); got != tt.want {
			t.Errorf("%s: FullWidth = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPartitionPreservesOrder(t *testing.T) {
	cards := []content.Card{
		grid("a"), grid("b"), full("c"), grid("d"), full("e"), full("f"), grid("g"),
	}
	blocks := Partition(cards)

	flat := Flatten(blocks)
	if len(flat) != len(cards) {
		t.Fatalf("flattened %d cards, want %d", len(flat), len(cards))
	}
	for i := range cards {
		if flat[i].ID != cards[i].ID {
			t.Errorf("position %d: got %q, want %q", i, flat[i].ID, cards[i].ID)
		}
	}
}

func TestPartitionBlockStructure(t *testing.T) {
	cards := []content.Card{
		grid("a"), grid("b"), full("c"), grid("d"),
	}
	blocks := Partition(cards)

	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	if blocks[0].Full != nil || len(blocks[0].Grid) != 2 {
		t.Errorf("block 0 should be a 2-card grid")
	}
	if blocks[1].Full == nil || blocks[1].Full.ID != "c" {
		t.Errorf("block 1 should be full-width card c")
	}
	if blocks[2].Full != nil || len(blocks[2].Grid) != 1 {
		t.Errorf("block 2 should be the trailing 1-card grid")
	}
}

func TestPartitionEmptySection(t *testing.T) {
	if blocks := Partition(nil); len(blocks) != 0 {
		t.Errorf("empty section should render no blocks, got %d", len(blocks))
	}
}

func TestPartitionAllFullWidth(t *testing.T) {
	blocks := Partition([]content.Card{full("a"), full("b")})
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	for i, b := range blocks {
		if b.Full == nil {
			t.Errorf("block %d should be full-width", i)
		}
	}
}

func TestSpanRuleSingleCard(t *testing.T) {
	blocks := Partition([]content.Card{grid("a")})
	if len(blocks) != 1 || len(blocks[0].Grid) != 1 {
		t.Fatalf("unexpected blocks: %+v", blocks)
	}
	if !blocks[0].Grid[0].SpanBoth {
		t.Error("lone grid card must span both columns")
	}
}

func TestSpanRuleOddBlockLastCardSpans(t *testing.T) {
	blocks := Partition([]content.Card{grid("a"), grid("b"), grid("c")})
	cells := blocks[0].Grid
	if cells[0].SpanBoth || cells[1].SpanBoth {
		t.Error("non-last cards of an odd block must not span")
	}
	if !cells[2].SpanBoth {
		t.Error("last card of an odd block must span")
	}
}

func TestSpanRuleEvenBlockNoSpan(t *testing.T) {
	blocks := Partition([]content.Card{grid("a"), grid("b"), grid("c"), grid("d")})
	for i, cell := range blocks[0].Grid {
		if cell.SpanBoth {
			t.Errorf("cell %d of an even block should not span", i)
		}
	}
}

func TestSpanRuleImportantAlertSpans(t *testing.T) {
	important := content.Card{ID: "warn", Type: content.TypeAlert, AlertType: "important"}
	blocks := Partition([]content.Card{important, grid("a"), grid("b"), grid("c")})

	cells := blocks[0].Grid
	if !cells[0].SpanBoth {
		t.Error("important alert must span regardless of position")
	}
	// Even count: no positional spans besides the alert.
	for i := 1; i < len(cells); i++ {
		if cells[i].SpanBoth {
			t.Errorf("cell %d should not span", i)
		}
	}
}

func TestSpanRuleInfoAlertDoesNotSpan(t *testing.T) {
	info := content.Card{ID: "note", Type: content.TypeAlert, AlertType: "info"}
	blocks := Partition([]content.Card{info, grid("a")})
	if blocks[0].Grid[0].SpanBoth {
		t.Error("non-important alert in an even block should not span")
	}
}

func TestSpanRuleIsLocalToBlock(t *testing.T) {
	// Two grid runs separated by a full-width card: the span rule counts
	// each run independently.
	cards := []content.Card{
		grid("a"), grid("b"), grid("c"), // odd run: c spans
		full("x"),
		grid("d"), grid("e"), // even run: no spans
	}
	blocks := Partition(cards)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	first := blocks[0].Grid
	if !first[2].SpanBoth {
		t.Error("last card of first (odd) run should span")
	}
	for i, cell := range blocks[2].Grid {
		if cell.SpanBoth {
			t.Errorf("second run cell %d should not span", i)
		}
	}
}
