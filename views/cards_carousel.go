package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
	"github.com/Sesamsesam/AI-foundations-sub000/richtext"
	"github.com/Sesamsesam/AI-foundations-sub000/widget"
)

// ActionCarousel renders a paged grid of action items. Paging swaps the
// card through an HTMX fragment; the client script measures the viewport
// and rewrites the per-view parameter on resize, which re-clamps the index
// server-side.
func ActionCarousel(sectionID string, c content.Card, st widget.PagedCarousel) templ.Component {
	return component(func(buf *bytes.Buffer) {
		domID := cardDomID(sectionID, c.ID)
		frag := fragmentURL("action", sectionID, c.ID)
		buf.WriteString(`<article class="card card-actions" id="` + esc(domID) + `" data-carousel="paged" data-index="` + itoa(st.Index) + `">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		if len(c.ActionItems) == 0 {
			buf.WriteString(`</article>`)
			return
		}

		buf.WriteString(`<div class="action-window cols-` + itoa(st.PerView) + `">`)
		end := st.Index + st.PerView
		if end > len(c.ActionItems) {
			end = len(c.ActionItems)
		}
		for _, item := range c.ActionItems[st.Index:end] {
			buf.WriteString(`<div class="action-item">`)
			if i := href(item.Icon); i != "" {
				buf.WriteString(`<img class="action-icon" src="` + i + `" alt="" loading="lazy">`)
			}
			buf.WriteString(`<h4>` + esc(item.Title) + `</h4>`)
			if item.Description != "" {
				buf.WriteString(`<p>` + richtext.FormatInline(item.Description) + `</p>`)
			}
			if u := href(item.URL); u != "" {
				buf.WriteString(`<a href="` + u + `" target="_blank" rel="noopener noreferrer">Try it</a>`)
			}
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`</div>`)

		target := ` hx-target="#` + esc(domID) + `" hx-swap="outerHTML"`
		buf.WriteString(`<div class="carousel-nav">`)
		buf.WriteString(`<button type="button" class="carousel-prev"` + disabledAttr(st.AtStart()))
		buf.WriteString(` hx-get="` + frag + `?i=` + itoa(st.Index-st.PerView) + `&amp;per=` + itoa(st.PerView) + `"` + target + ` aria-label="Previous"></button>`)
		buf.WriteString(`<div class="carousel-dots">`)
		for p := 0; p < st.Pages(); p++ {
			cls := "dot"
			if p == st.Page() {
				cls += " dot-active"
			}
			buf.WriteString(`<button type="button" class="` + cls + `"`)
			buf.WriteString(` hx-get="` + frag + `?i=` + itoa(p*st.PerView) + `&amp;per=` + itoa(st.PerView) + `"` + target)
			buf.WriteString(` aria-label="Page ` + itoa(p+1) + `"></button>`)
		}
		buf.WriteString(`</div>`)
		buf.WriteString(`<button type="button" class="carousel-next"` + disabledAttr(st.AtEnd()))
		buf.WriteString(` hx-get="` + frag + `?i=` + itoa(st.Index+st.PerView) + `&amp;per=` + itoa(st.PerView) + `"` + target + ` aria-label="Next"></button>`)
		buf.WriteString(`</div>`)
		buf.WriteString(`</article>`)
	})
}

// InfoCarouselCard shows one slide at a time with wraparound. All slides
// are rendered; the client script rotates visibility on a timer and pauses
// on hover, while the manual controls go through the fragment endpoint so
// direction and index survive a swap.
func InfoCarouselCard(sectionID string, c content.Card, st widget.InfoCarousel) templ.Component {
	return component(func(buf *bytes.Buffer) {
		domID := cardDomID(sectionID, c.ID)
		frag := fragmentURL("info", sectionID, c.ID)
		dir := "fwd"
		if st.Direction < 0 {
			dir = "back"
		}
		buf.WriteString(`<article class="card card-info-carousel" id="` + esc(domID) + `" data-carousel="info" data-index="` + itoa(st.Index) + `" data-direction="` + dir + `">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		if len(c.Slides) == 0 {
			buf.WriteString(`</article>`)
			return
		}
		buf.WriteString(`<div class="info-slides">`)
		for i, s := range c.Slides {
			attr := ``
			if i != st.Index {
				attr = ` hidden`
			}
			buf.WriteString(`<div class="info-slide slide-` + dir + `" data-slide-index="` + itoa(i) + `"` + attr + `>`)
			if ic := href(s.Icon); ic != "" {
				buf.WriteString(`<img class="info-icon" src="` + ic + `" alt="" loading="lazy">`)
			}
			if s.Title != "" {
				buf.WriteString(`<h4>` + esc(s.Title) + `</h4>`)
			}
			if s.Body != "" {
				buf.WriteString(`<p>` + richtext.FormatInline(s.Body) + `</p>`)
			}
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`</div>`)

		target := ` hx-target="#` + esc(domID) + `" hx-swap="outerHTML"`
		buf.WriteString(`<div class="carousel-nav">`)
		buf.WriteString(`<button type="button" class="carousel-prev" hx-get="` + frag + `?i=` + itoa(st.Index) + `&amp;move=prev"` + target + ` aria-label="Previous"></button>`)
		buf.WriteString(`<div class="carousel-dots">`)
		for i := range c.Slides {
			cls := "dot"
			if i == st.Index {
				cls += " dot-active"
			}
			buf.WriteString(`<button type="button" class="` + cls + `" hx-get="` + frag + `?i=` + itoa(st.Index) + `&amp;jump=` + itoa(i) + `"` + target + ` aria-label="Slide ` + itoa(i+1) + `"></button>`)
		}
		buf.WriteString(`</div>`)
		buf.WriteString(`<button type="button" class="carousel-next" hx-get="` + frag + `?i=` + itoa(st.Index) + `&amp;move=next"` + target + ` aria-label="Next"></button>`)
		buf.WriteString(`</div>`)
		buf.WriteString(`</article>`)
	})
}

func disabledAttr(disabled bool) string {
	if disabled {
		return ` disabled`
	}
	return ``
}
