package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
	"github.com/Sesamsesam/AI-foundations-sub000/richtext"
	"github.com/Sesamsesam/AI-foundations-sub000/widget"
)

// expandToggle writes the chevron button the client script drives. The
// script swaps the label, flips aria-expanded, and schedules the
// scroll-into-view after the height transition settles.
func expandToggle(buf *bytes.Buffer, collapsedLabel, expandedLabel string) {
	buf.WriteString(`<button type="button" class="expand-toggle" aria-expanded="false"`)
	buf.WriteString(` data-expand-delay="` + itoa(widget.ExpandScrollDelayMillis) + `"`)
	buf.WriteString(` data-label-collapsed="` + esc(collapsedLabel) + `"`)
	buf.WriteString(` data-label-expanded="` + esc(expandedLabel) + `">`)
	buf.WriteString(esc(collapsedLabel))
	buf.WriteString(`<span class="chevron" aria-hidden="true"></span></button>`)
}

// CourseCard renders a course summary with expandable highlights.
func CourseCard(sectionID string, c content.Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-course expandable" id="` + esc(cardDomID(sectionID, c.ID)) + `">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		buf.WriteString(`<dl class="course-meta">`)
		writeMeta(buf, "Provider", c.Provider)
		writeMeta(buf, "Duration", c.Duration)
		writeMeta(buf, "Level", c.Level)
		buf.WriteString(`</dl>`)
		if c.Content != "" {
			buf.WriteString(`<div class="card-body">`)
			richtext.RenderBody(buf, c.Content)
			buf.WriteString(`</div>`)
		}
		if len(c.Highlights) > 0 {
			expandToggle(buf, "What you'll learn", "Show less")
			buf.WriteString(`<div class="expand-detail" hidden><ul class="course-highlights">`)
			for _, h := range c.Highlights {
				buf.WriteString(`<li>` + richtext.FormatInline(h) + `</li>`)
			}
			buf.WriteString(`</ul></div>`)
		}
		if u := href(c.URL); u != "" {
			buf.WriteString(`<a class="course-link" href="` + u + `" target="_blank" rel="noopener noreferrer">View course</a>`)
		}
		buf.WriteString(`</article>`)
	})
}

// ToolCard renders a tool summary with expandable usage notes.
func ToolCard(sectionID string, c content.Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-tool expandable" id="` + esc(cardDomID(sectionID, c.ID)) + `">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		buf.WriteString(`<dl class="tool-meta">`)
		writeMeta(buf, "Category", c.Category)
		writeMeta(buf, "Pricing", c.Pricing)
		buf.WriteString(`</dl>`)
		if c.Content != "" {
			buf.WriteString(`<div class="card-body">`)
			richtext.RenderBody(buf, c.Content)
			buf.WriteString(`</div>`)
		}
		if c.UsageNotes != "" {
			expandToggle(buf, "Usage notes", "Hide notes")
			buf.WriteString(`<div class="expand-detail" hidden>`)
			richtext.RenderBody(buf, c.UsageNotes)
			buf.WriteString(`</div>`)
		}
		if u := href(c.URL); u != "" {
			buf.WriteString(`<a class="tool-link" href="` + u + `" target="_blank" rel="noopener noreferrer">Open tool</a>`)
		}
		buf.WriteString(`</article>`)
	})
}

// writeMeta emits one dt/dd pair, omitting absent fields entirely.
func writeMeta(buf *bytes.Buffer, label, value string) {
	if value == "" {
		return
	}
	buf.WriteString(`<div><dt>` + label + `</dt><dd>` + esc(value) + `</dd></div>`)
}

// DualExpandableCard couples two panels so that opening one collapses the
// other. The whole card swaps through an HTMX fragment, so the mutual
// exclusion is enforced server-side by the widget state machine.
func DualExpandableCard(sectionID string, c content.Card, st widget.DualExpandable) templ.Component {
	return component(func(buf *bytes.Buffer) {
		domID := cardDomID(sectionID, c.ID)
		buf.WriteString(`<article class="card card-dual" id="` + esc(domID) + `">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		if len(c.Panels) >= 2 {
			buf.WriteString(`<div class="dual-panels">`)
			writeDualPanel(buf, sectionID, c, c.Panels[0], widget.DualLeft, st.LeftOpen(), st)
			writeDualPanel(buf, sectionID, c, c.Panels[1], widget.DualRight, st.RightOpen(), st)
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`</article>`)
	})
}

func writeDualPanel(buf *bytes.Buffer, sectionID string, c content.Card, p content.Panel, side widget.DualSide, open bool, st widget.DualExpandable) {
	// Clicking a panel toggles it: an open panel requests the collapsed
	// state, a closed one requests its own side (which collapses the
	// sibling in the same swap).
	next := st
	if side == widget.DualLeft {
		next.ToggleLeft()
	} else {
		next.ToggleRight()
	}
	cls := "dual-panel"
	if open {
		cls += " dual-panel-open"
	}
	buf.WriteString(`<section class="` + cls + `">`)
	buf.WriteString(`<button type="button" class="dual-toggle" aria-expanded="` + boolAttr(open) + `"`)
	buf.WriteString(` hx-get="` + fragmentURL("dual", sectionID, c.ID) + `?side=` + next.Open.String() + `"`)
	buf.WriteString(` hx-target="#` + esc(cardDomID(sectionID, c.ID)) + `" hx-swap="outerHTML">`)
	buf.WriteString(esc(p.Title))
	buf.WriteString(`<span class="chevron" aria-hidden="true"></span></button>`)
	if p.Summary != "" {
		buf.WriteString(`<p class="dual-summary">` + richtext.FormatInline(p.Summary) + `</p>`)
	}
	if open && p.Details != "" {
		buf.WriteString(`<div class="dual-detail" data-expand-delay="` + itoa(widget.ExpandScrollDelayMillis) + `">`)
		richtext.RenderBody(buf, p.Details)
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`</section>`)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
