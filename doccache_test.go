package guide

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const minimalDoc = `
tabs:
  - id: one
    label: One
    sections:
      - id: s1
        title: First
`

const updatedDoc = `
tabs:
  - id: one
    label: One
    sections:
      - id: s1
        title: First
  - id: two
    label: Two
    sections:
      - id: s2
        title: Second
`

func writeDoc(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
}

func TestDocCacheServesEmbeddedDefault(t *testing.T) {
	c := NewDocCache("", time.Minute)
	doc, err := c.Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if len(doc.Tabs) == 0 {
		t.Fatalf("embedded document has no tabs")
	}
}

func TestDocCacheReloadsAfterTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.yaml")
	writeDoc(t, path, minimalDoc)

	c := NewDocCache(path, 10*time.Millisecond)
	doc, err := c.Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if len(doc.Tabs) != 1 {
		t.Fatalf("want 1 tab, got %d", len(doc.Tabs))
	}

	writeDoc(t, path, updatedDoc)
	time.Sleep(20 * time.Millisecond)

	doc, err = c.Document()
	if err != nil {
		t.Fatalf("Document after reload: %v", err)
	}
	if len(doc.Tabs) != 2 {
		t.Errorf("want 2 tabs after reload, got %d", len(doc.Tabs))
	}
}

func TestDocCacheKeepsLastGoodOnBadReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.yaml")
	writeDoc(t, path, minimalDoc)

	c := NewDocCache(path, 10*time.Millisecond)
	if _, err := c.Document(); err != nil {
		t.Fatalf("Document: %v", err)
	}

	writeDoc(t, path, "tabs: []\n")
	time.Sleep(20 * time.Millisecond)

	doc, err := c.Document()
	if err != nil {
		t.Fatalf("bad reload should not surface an error: %v", err)
	}
	if len(doc.Tabs) != 1 {
		t.Errorf("last good document lost: got %d tabs", len(doc.Tabs))
	}
}

func TestDocCacheInvalidateForcesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.yaml")
	writeDoc(t, path, minimalDoc)

	c := NewDocCache(path, time.Hour)
	if _, err := c.Document(); err != nil {
		t.Fatalf("Document: %v", err)
	}

	writeDoc(t, path, updatedDoc)
	c.Invalidate()

	doc, err := c.Document()
	if err != nil {
		t.Fatalf("Document after invalidate: %v", err)
	}
	if len(doc.Tabs) != 2 {
		t.Errorf("invalidate should force a reload: got %d tabs", len(doc.Tabs))
	}
}
