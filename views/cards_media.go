package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
	"github.com/Sesamsesam/AI-foundations-sub000/richtext"
	"github.com/Sesamsesam/AI-foundations-sub000/widget"
)

// VideoEmbed renders a click-to-load video facade: a proxied thumbnail
// with a play overlay that the client script swaps for the real iframe.
// The thumbnail proxy owns the quality fallback chain; if no video id can
// be recovered the facade degrades to the static play placeholder.
func VideoEmbed(c content.Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-video">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		raw := c.VideoID
		if raw == "" {
			raw = c.VideoURL
		}
		id := widget.ExtractVideoID(raw)
		if id == "" {
			buf.WriteString(`<div class="video-placeholder" aria-hidden="true"><span class="play-glyph"></span></div>`)
			buf.WriteString(`</article>`)
			return
		}
		buf.WriteString(`<button type="button" class="video-facade" data-embed-url="` + esc(widget.EmbedURL(id)) + `" aria-label="Play video">`)
		buf.WriteString(`<img src="/thumb/` + esc(id) + `" alt="" loading="lazy">`)
		buf.WriteString(`<span class="play-glyph" aria-hidden="true"></span>`)
		buf.WriteString(`</button>`)
		buf.WriteString(`</article>`)
	})
}

// SlideViewer embeds a slide deck iframe.
func SlideViewer(c content.Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-slides">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		if u := href(c.SlideURL); u != "" {
			buf.WriteString(`<div class="slide-frame"><iframe src="` + u + `" loading="lazy" allowfullscreen></iframe></div>`)
		}
		buf.WriteString(`</article>`)
	})
}

// PDFCarousel pages through embedded documents. Every document is rendered
// up front and only the active one is visible — switching toggles the
// hidden attribute client-side, so an embed never reloads mid-browse.
// Navigation wraps at both ends.
func PDFCarousel(sectionID string, c content.Card, st widget.DocCarousel) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-pdfs" id="` + esc(cardDomID(sectionID, c.ID)) + `" data-carousel="docs">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		if len(c.PDFPaths) == 0 {
			buf.WriteString(`</article>`)
			return
		}
		buf.WriteString(`<div class="doc-frames">`)
		for i, p := range c.PDFPaths {
			u := href(p)
			if u == "" {
				continue
			}
			attr := ``
			if i != st.Index {
				attr = ` hidden`
			}
			// Suppress native viewer chrome where the browser supports it.
			buf.WriteString(`<div class="doc-frame" data-doc-index="` + itoa(i) + `"` + attr + `>`)
			buf.WriteString(`<iframe src="` + u + `#toolbar=0&amp;navpanes=0" loading="lazy"></iframe></div>`)
		}
		buf.WriteString(`</div>`)
		if len(c.PDFPaths) > 1 {
			buf.WriteString(`<div class="doc-nav">`)
			buf.WriteString(`<button type="button" class="doc-prev" aria-label="Previous document"></button>`)
			buf.WriteString(`<span class="doc-count" data-doc-current="` + itoa(st.Index) + `">` + itoa(st.Index+1) + ` / ` + itoa(len(c.PDFPaths)) + `</span>`)
			buf.WriteString(`<button type="button" class="doc-next" aria-label="Next document"></button>`)
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`</article>`)
	})
}
