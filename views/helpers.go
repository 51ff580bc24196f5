// Package views renders the guide as templ components: the page shell, tab
// navigation, timeline sidebar, section blocks, and one leaf renderer per
// card type. Components are hand-built HTML writers; all dynamic text is
// escaped on the way out.
package views

import (
	"encoding/json"
	"html"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/Sesamsesam/AI-foundations-sub000/richtext"
)

// SiteConfig holds the site-wide settings templates read. Handlers populate
// it once from configuration so nothing is hardcoded in markup.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// esc escapes text for HTML element content and attribute values.
func esc(s string) string {
	return html.EscapeString(s)
}

// href sanitizes a URL for an attribute, returning "" for unsafe schemes.
func href(s string) string {
	return richtext.SafeURL(s)
}

// itoa keeps the renderers terse.
func itoa(n int) string {
	return strconv.Itoa(n)
}

// fragmentURL builds the HTMX endpoint path for an interactive card.
func fragmentURL(kind, sectionID, cardID string) string {
	return "/fragment/" + kind + "/" + url.PathEscape(sectionID) + "/" + url.PathEscape(cardID) + "/"
}

// cardDomID is the stable DOM id for a card, unique because section ids
// are document-unique and card ids are section-unique.
func cardDomID(sectionID, cardID string) string {
	return "card-" + sectionID + "-" + cardID
}

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
// Handlers share it for canonical links and the sitemap.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// tabClass returns the nav pill classes, with active variant.
func tabClass(active bool) string {
	base := "tab-link"
	if active {
		base += " tab-link-active"
	}
	return base
}

// alertClass maps an alert level to its card modifier class. Unknown
// levels render as info.
func alertClass(level string) string {
	switch level {
	case "warning", "important":
		return "alert-" + level
	}
	return "alert-info"
}
