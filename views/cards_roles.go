package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
	"github.com/Sesamsesam/AI-foundations-sub000/richtext"
)

// RoleUseCases renders a row of role summary cards, each paired with a
// slide-in detail panel. The client script owns open/close: opening locks
// body scroll and closing restores the prior lock state, so stacked
// overlays never re-enable scroll underneath each other. A panel opens
// only on explicit click and closes via backdrop, close control, or
// escape.
func RoleUseCases(sectionID string, c content.Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-roles" id="` + esc(cardDomID(sectionID, c.ID)) + `">`)
		if c.Title != "" {
			buf.WriteString(`<h3 class="card-title">` + richtext.FormatInline(c.Title) + `</h3>`)
		}
		buf.WriteString(`<div class="role-grid">`)
		for i, rc := range c.RoleUseCases {
			panelID := cardDomID(sectionID, c.ID) + "-panel-" + itoa(i)
			buf.WriteString(`<button type="button" class="role-summary" data-panel="#` + esc(panelID) + `" aria-haspopup="dialog">`)
			buf.WriteString(`<h4>` + esc(rc.Role) + `</h4>`)
			if rc.Scenario != "" {
				buf.WriteString(`<p>` + richtext.FormatInline(rc.Scenario) + `</p>`)
			}
			buf.WriteString(`</button>`)
			writeRolePanel(buf, panelID, rc)
		}
		buf.WriteString(`</div></article>`)
	})
}

func writeRolePanel(buf *bytes.Buffer, panelID string, rc content.RoleUseCase) {
	buf.WriteString(`<div class="role-panel-backdrop" id="` + esc(panelID) + `" hidden>`)
	buf.WriteString(`<aside class="role-panel" role="dialog" aria-modal="true" aria-label="` + esc(rc.Role) + `">`)
	buf.WriteString(`<button type="button" class="role-panel-close" aria-label="Close"></button>`)
	buf.WriteString(`<h4>` + esc(rc.Role) + `</h4>`)
	if rc.Scenario != "" {
		buf.WriteString(`<p class="role-scenario">` + richtext.FormatInline(rc.Scenario) + `</p>`)
	}
	if len(rc.Tools) > 0 {
		buf.WriteString(`<h5>Tools</h5><ul class="role-tools">`)
		for _, t := range rc.Tools {
			buf.WriteString(`<li>` + esc(t) + `</li>`)
		}
		buf.WriteString(`</ul>`)
	}
	if len(rc.Workflow) > 0 {
		buf.WriteString(`<h5>Workflow</h5><ol class="role-workflow">`)
		for _, step := range rc.Workflow {
			buf.WriteString(`<li>` + richtext.FormatInline(step) + `</li>`)
		}
		buf.WriteString(`</ol>`)
	}
	if rc.Outcome != "" {
		buf.WriteString(`<p class="role-outcome">` + richtext.FormatInline(rc.Outcome) + `</p>`)
	}
	if rc.BusinessContext != "" {
		buf.WriteString(`<details class="role-context"><summary>Business context</summary>`)
		richtext.RenderBody(buf, rc.BusinessContext)
		buf.WriteString(`</details>`)
	}
	if u := href(rc.CTAURL); u != "" {
		label := rc.CTALabel
		if label == "" {
			label = "Learn more"
		}
		buf.WriteString(`<a class="role-cta" href="` + u + `" target="_blank" rel="noopener noreferrer">` + esc(label) + `</a>`)
	}
	buf.WriteString(`</aside></div>`)
}
