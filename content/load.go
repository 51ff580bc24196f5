package content

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultDocument is the guide content shipped with the binary. A deployment
// can override it with a file path via configuration.
//
//go:embed guide.yaml
var defaultDocument embed.FS

// LoadDefault parses the embedded guide document.
func LoadDefault() (*Document, error) {
	raw, err := defaultDocument.ReadFile("guide.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded document: %w", err)
	}
	return Parse(raw)
}

// LoadFile parses a guide document from disk.
func LoadFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse unmarshals a YAML document and checks its structural invariants.
func Parse(raw []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the invariants hash routing and the timeline depend on:
// at least one tab, unique tab ids, and section ids unique document-wide.
// Card payloads are deliberately not validated — malformed cards degrade
// at render time instead of blocking startup.
func (d *Document) Validate() error {
	if len(d.Tabs) == 0 {
		return fmt.Errorf("document has no tabs")
	}
	tabIDs := make(map[string]struct{}, len(d.Tabs))
	sectionIDs := make(map[string]string)
	for _, t := range d.Tabs {
		if t.ID == "" {
			return fmt.Errorf("tab %q has no id", t.Label)
		}
		if _, dup := tabIDs[t.ID]; dup {
			return fmt.Errorf("duplicate tab id %q", t.ID)
		}
		tabIDs[t.ID] = struct{}{}
		for _, s := range t.Sections {
			if s.ID == "" {
				return fmt.Errorf("tab %q: section %q has no id", t.ID, s.Title)
			}
			if owner, dup := sectionIDs[s.ID]; dup {
				return fmt.Errorf("section id %q appears in tabs %q and %q", s.ID, owner, t.ID)
			}
			sectionIDs[s.ID] = t.ID
		}
	}
	return nil
}

// TabByID returns the tab with the given id.
func (d *Document) TabByID(id string) (Tab, bool) {
	for _, t := range d.Tabs {
		if t.ID == id {
			return t, true
		}
	}
	return Tab{}, false
}

// TabForSection resolves a section id to its owning tab. This is the hash
// deep-link lookup: unknown ids return false and the caller leaves
// navigation unchanged.
func (d *Document) TabForSection(sectionID string) (Tab, bool) {
	for _, t := range d.Tabs {
		for _, s := range t.Sections {
			if s.ID == sectionID {
				return t, true
			}
		}
	}
	return Tab{}, false
}

// SectionByID returns a section by its document-wide id.
func (d *Document) SectionByID(id string) (Section, bool) {
	for _, t := range d.Tabs {
		for _, s := range t.Sections {
			if s.ID == id {
				return s, true
			}
		}
	}
	return Section{}, false
}

// CardByID returns a card by section id and card id.
func (d *Document) CardByID(sectionID, cardID string) (Card, bool) {
	s, ok := d.SectionByID(sectionID)
	if !ok {
		return Card{}, false
	}
	for _, c := range s.Cards {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}

// DefaultTab returns the first declared tab. The document is validated to
// be non-empty, so this is always safe after a successful load.
func (d *Document) DefaultTab() Tab {
	return d.Tabs[0]
}
