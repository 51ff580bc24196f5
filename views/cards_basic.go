package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
	"github.com/Sesamsesam/AI-foundations-sub000/richtext"
)

// Alert renders an info/warning/important banner card.
func Alert(c content.Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-alert ` + alertClass(c.AlertType) + `" role="note">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		if c.Content != "" {
			buf.WriteString(`<div class="card-body">`)
			richtext.RenderBody(buf, c.Content)
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`</article>`)
	})
}

// Callout renders a highlighted aside with an optional call-to-action link.
func Callout(c content.Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-callout">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		if c.Content != "" {
			buf.WriteString(`<div class="card-body">`)
			richtext.RenderBody(buf, c.Content)
			buf.WriteString(`</div>`)
		}
		if u := href(c.URL); u != "" {
			buf.WriteString(`<a class="callout-cta" href="` + u + `" target="_blank" rel="noopener noreferrer">Learn more</a>`)
		}
		buf.WriteString(`</article>`)
	})
}

// Checklist renders plain items as checkable rows plus optional linked rows.
func Checklist(c content.Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-checklist">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		if len(c.Items) > 0 {
			buf.WriteString(`<ul class="checklist">`)
			for _, item := range c.Items {
				buf.WriteString(`<li class="checklist-item"><label><input type="checkbox"><span>`)
				buf.WriteString(richtext.FormatInline(item))
				buf.WriteString(`</span></label></li>`)
			}
			buf.WriteString(`</ul>`)
		}
		if len(c.ChecklistLinks) > 0 {
			buf.WriteString(`<ul class="checklist-links">`)
			for _, l := range c.ChecklistLinks {
				u := href(l.URL)
				if u == "" {
					continue
				}
				buf.WriteString(`<li><a href="` + u + `" target="_blank" rel="noopener noreferrer">` + esc(l.Label) + `</a></li>`)
			}
			buf.WriteString(`</ul>`)
		}
		buf.WriteString(`</article>`)
	})
}

// LinksGrid renders a grid of labelled external links.
func LinksGrid(c content.Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-links-grid">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		buf.WriteString(`<div class="links-grid">`)
		for _, l := range c.Links {
			u := href(l.URL)
			if u == "" {
				continue
			}
			buf.WriteString(`<a class="links-grid-item" href="` + u + `" target="_blank" rel="noopener noreferrer">`)
			if i := href(l.Icon); i != "" {
				buf.WriteString(`<img class="links-grid-icon" src="` + i + `" alt="" loading="lazy">`)
			}
			buf.WriteString(`<span class="links-grid-label">` + esc(l.Label) + `</span>`)
			if l.Description != "" {
				buf.WriteString(`<span class="links-grid-desc">` + esc(l.Description) + `</span>`)
			}
			buf.WriteString(`</a>`)
		}
		buf.WriteString(`</div></article>`)
	})
}

// CaseStudyCard renders a case study: challenge, approach, results, and an
// optional pull quote. A card without its payload renders just the shell.
func CaseStudyCard(c content.Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-case-study">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		cs := c.CaseStudy
		if cs == nil {
			buf.WriteString(`</article>`)
			return
		}
		if cs.Company != "" {
			buf.WriteString(`<p class="case-study-company">` + esc(cs.Company) + `</p>`)
		}
		if cs.Challenge != "" {
			buf.WriteString(`<h4>Challenge</h4><p>` + richtext.FormatInline(cs.Challenge) + `</p>`)
		}
		if cs.Approach != "" {
			buf.WriteString(`<h4>Approach</h4><p>` + richtext.FormatInline(cs.Approach) + `</p>`)
		}
		if len(cs.Results) > 0 {
			buf.WriteString(`<h4>Results</h4><ul class="case-study-results">`)
			for _, r := range cs.Results {
				buf.WriteString(`<li>` + richtext.FormatInline(r) + `</li>`)
			}
			buf.WriteString(`</ul>`)
		}
		if cs.Quote != "" {
			buf.WriteString(`<blockquote class="case-study-quote">` + esc(cs.Quote))
			if cs.Source != "" {
				buf.WriteString(`<cite>` + esc(cs.Source) + `</cite>`)
			}
			buf.WriteString(`</blockquote>`)
		}
		buf.WriteString(`</article>`)
	})
}
