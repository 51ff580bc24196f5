package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
	"github.com/Sesamsesam/AI-foundations-sub000/richtext"
	"github.com/Sesamsesam/AI-foundations-sub000/widget"
)

// Page renders the full document shell for one active tab. Timeline tuning
// constants ride along as data attributes so the client script and the
// server agree on the activation rules.
func Page(cfg SiteConfig, doc *content.Document, active content.Tab, darkMode bool) templ.Component {
	return component(func(buf *bytes.Buffer) {
		htmlClass := ""
		if darkMode {
			htmlClass = ` class="dark"`
		}
		buf.WriteString(`<!DOCTYPE html><html lang="en"` + htmlClass + `><head>`)
		buf.WriteString(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		title := cfg.Name
		if active.Label != "" {
			title = active.Label + " — " + cfg.Name
		}
		buf.WriteString(`<title>` + esc(title) + `</title>`)
		if cfg.Description != "" {
			buf.WriteString(`<meta name="description" content="` + esc(cfg.Description) + `">`)
		}
		buf.WriteString(`<link rel="canonical" href="` + esc(BuildURL(cfg.URL, "tab", active.ID)) + `">`)
		buf.WriteString(`<script type="application/ld+json">` + WebsiteJsonLD(cfg) + `</script>`)
		buf.WriteString(`<link rel="stylesheet" href="/public/guide.css">`)
		buf.WriteString(`<script src="/public/htmx.min.js" defer></script>`)
		buf.WriteString(`<script src="/public/guide.js" defer></script>`)
		buf.WriteString(`</head>`)

		buf.WriteString(`<body data-top-band="` + itoa(widget.TimelineTopBandPercent) + `"`)
		buf.WriteString(` data-bottom-threshold="` + itoa(widget.TimelineBottomThresholdPx) + `"`)
		buf.WriteString(` data-scroll-offset="` + itoa(widget.TimelineScrollOffsetPx) + `">`)

		writeHeader(buf, cfg, doc, active.ID, darkMode)

		buf.WriteString(`<div class="layout">`)
		writeTimeline(buf, active)
		buf.WriteString(`<main id="tab-content" class="tab-content">`)
		renderInto(buf, TabPartial(active))
		buf.WriteString(`</main></div>`)

		buf.WriteString(`</body></html>`)
	})
}

// TabPartial renders the hero and sections of one tab — the HTMX swap
// target for tab switches, and the body of the full page render.
func TabPartial(tab content.Tab) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHero(buf, tab.Hero)
		for _, s := range tab.Sections {
			renderInto(buf, Section(s))
		}
	})
}

func writeHeader(buf *bytes.Buffer, cfg SiteConfig, doc *content.Document, activeID string, darkMode bool) {
	buf.WriteString(`<header class="site-header">`)
	buf.WriteString(`<span class="site-name">` + esc(cfg.Name) + `</span>`)
	buf.WriteString(`<nav class="tab-nav" aria-label="Guide tabs">`)
	for _, t := range doc.Tabs {
		// Full navigation, not an HX swap: switching tabs clears any hash
		// and resets scroll, which a fresh page load gives us for free.
		buf.WriteString(`<a class="` + tabClass(t.ID == activeID) + `" href="/tab/` + esc(t.ID) + `/" data-tab-link>`)
		buf.WriteString(esc(t.Label))
		buf.WriteString(`</a>`)
	}
	buf.WriteString(`</nav>`)
	pressed := "false"
	if darkMode {
		pressed = "true"
	}
	buf.WriteString(`<button type="button" class="theme-toggle" aria-pressed="` + pressed + `" aria-label="Toggle dark mode"></button>`)
	buf.WriteString(`</header>`)
}

func writeHero(buf *bytes.Buffer, h content.Hero) {
	buf.WriteString(`<div class="hero">`)
	if h.Title != "" {
		buf.WriteString(`<h1 class="hero-title">` + esc(h.Title) + `</h1>`)
	}
	if h.Subtitle != "" {
		buf.WriteString(`<p class="hero-subtitle">` + richtext.FormatInline(h.Subtitle) + `</p>`)
	}
	if id := widget.ExtractVideoID(h.EmbedURL); id != "" {
		buf.WriteString(`<button type="button" class="video-facade hero-video" data-embed-url="` + esc(widget.EmbedURL(id)) + `" aria-label="Play video">`)
		buf.WriteString(`<img src="/thumb/` + esc(id) + `" alt="" loading="lazy">`)
		buf.WriteString(`<span class="play-glyph" aria-hidden="true"></span></button>`)
	}
	buf.WriteString(`</div>`)
}

// writeTimeline emits the scroll-synced sidebar for the active tab's
// sections. The script highlights nodes from intersection reports and the
// near-bottom override; clicking scrolls to the anchor with the fixed
// offset.
func writeTimeline(buf *bytes.Buffer, tab content.Tab) {
	if len(tab.Sections) == 0 {
		return
	}
	buf.WriteString(`<nav class="timeline" aria-label="On this page" data-timeline data-tab="` + esc(tab.ID) + `">`)
	buf.WriteString(`<ol>`)
	for i, s := range tab.Sections {
		cls := "timeline-node"
		if i == 0 {
			// Active node resets to the first entry on every tab switch.
			cls += " timeline-active"
		}
		buf.WriteString(`<li><a class="` + cls + `" href="#` + esc(s.ID) + `" data-timeline-node="` + esc(s.ID) + `">`)
		buf.WriteString(esc(s.SidebarLabel()))
		buf.WriteString(`</a></li>`)
	}
	buf.WriteString(`</ol></nav>`)
}

// NotFound renders the styled 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "404", "This page has wandered off.")
}

// ServerError renders the styled 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "500", "Something went wrong on our side.")
}

func errorPage(cfg SiteConfig, code, message string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		buf.WriteString(`<title>` + code + ` — ` + esc(cfg.Name) + `</title>`)
		buf.WriteString(`<link rel="stylesheet" href="/public/guide.css"></head>`)
		buf.WriteString(`<body class="error-page"><main>`)
		buf.WriteString(`<h1>` + code + `</h1><p>` + esc(message) + `</p>`)
		buf.WriteString(`<a href="/">Back to the guide</a>`)
		buf.WriteString(`</main></body></html>`)
	})
}
