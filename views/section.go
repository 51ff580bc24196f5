package views

import (
	"bytes"
	"context"

	"github.com/a-h/templ"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
	"github.com/Sesamsesam/AI-foundations-sub000/layout"
	"github.com/Sesamsesam/AI-foundations-sub000/richtext"
)

// Section renders one section: anchor, heading, intro, then the layout
// engine's blocks in document order. Full-width blocks stand alone; grid
// blocks become a two-column grid with span classes from the layout cells.
func Section(s content.Section) templ.Component {
	return component(func(buf *bytes.Buffer) {
		cls := "section"
		if s.Centered {
			cls += " section-centered"
		}
		buf.WriteString(`<section class="` + cls + `" id="` + esc(s.ID) + `" data-section>`)
		buf.WriteString(`<h2 class="section-title">` + richtext.FormatInline(s.Title) + `</h2>`)
		if s.Intro != "" {
			buf.WriteString(`<div class="section-intro">`)
			richtext.RenderBody(buf, s.Intro)
			buf.WriteString(`</div>`)
		}
		for _, block := range layout.Partition(s.Cards) {
			writeBlock(buf, s.ID, block)
		}
		buf.WriteString(`</section>`)
	})
}

func writeBlock(buf *bytes.Buffer, sectionID string, b layout.Block) {
	if b.Full != nil {
		buf.WriteString(`<div class="block block-full">`)
		renderInto(buf, Card(sectionID, *b.Full))
		buf.WriteString(`</div>`)
		return
	}
	buf.WriteString(`<div class="block block-grid">`)
	for _, cell := range b.Grid {
		cls := "cell"
		if cell.SpanBoth {
			cls += " cell-span"
		}
		buf.WriteString(`<div class="` + cls + `">`)
		renderInto(buf, Card(sectionID, cell.Card))
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`</div>`)
}

// renderInto flattens a nested component into the parent buffer. Buffer
// writes cannot fail, so the error is discarded.
func renderInto(buf *bytes.Buffer, cmp templ.Component) {
	_ = cmp.Render(context.Background(), buf)
}
