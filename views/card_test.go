package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
	"github.com/Sesamsesam/AI-foundations-sub000/widget"
)

func renderToString(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestDispatcherCoversEveryDeclaredType(t *testing.T) {
	// Every declared card type must produce non-empty markup — this test
	// catches drift between the content model and the dispatcher.
	for _, ct := range content.AllCardTypes() {
		card := content.Card{ID: "c", Type: ct, Title: "Title"}
		out := renderToString(t, Card("s", card))
		if !strings.Contains(out, "<article") {
			t.Errorf("type %q rendered no card element: %q", ct, out)
		}
	}
}

func TestDispatcherUnknownTypeFallsBack(t *testing.T) {
	card := content.Card{ID: "c", Type: "hologram", Title: "Mystery", Content: "Still visible."}
	out := renderToString(t, Card("s", card))
	if !strings.Contains(out, "card-text") {
		t.Errorf("unknown type should use the generic renderer: %q", out)
	}
	if !strings.Contains(out, "Mystery") || !strings.Contains(out, "Still visible.") {
		t.Errorf("title and content must survive the fallback: %q", out)
	}
}

func TestDispatcherMissingTypeFallsBack(t *testing.T) {
	out := renderToString(t, Card("s", content.Card{ID: "c", Title: "Untyped"}))
	if !strings.Contains(out, "card-text") {
		t.Errorf("missing type should use the generic renderer: %q", out)
	}
}

func TestGenericCardOmitsMissingParts(t *testing.T) {
	out := renderToString(t, GenericCard(content.Card{ID: "c", Type: content.TypeText}))
	if strings.Contains(out, "card-title") || strings.Contains(out, "card-body") {
		t.Errorf("absent title/content should render nothing, not placeholders: %q", out)
	}
}

func TestAlertClassByLevel(t *testing.T) {
	tests := []struct {
		level string
		class string
	}{
		{"info", "alert-info"},
		{"warning", "alert-warning"},
		{"important", "alert-important"},
		{"", "alert-info"},
		{"bogus", "alert-info"},
	}
	for _, tt := range tests {
		card := content.Card{ID: "c", Type: content.TypeAlert, AlertType: tt.level, Title: "Heads up"}
		out := renderToString(t, Alert(card))
		if !strings.Contains(out, tt.class) {
			t.Errorf("alertType %q: want class %q in %q", tt.level, tt.class, out)
		}
	}
}

func TestCourseCardOmitsAbsentMeta(t *testing.T) {
	card := content.Card{ID: "c", Type: content.TypeCourseCard, Title: "Course", Provider: "Acme"}
	out := renderToString(t, CourseCard("s", card))
	if !strings.Contains(out, "Provider") {
		t.Errorf("present meta should render: %q", out)
	}
	if strings.Contains(out, "Duration") || strings.Contains(out, "Level") {
		t.Errorf("absent meta must be omitted, not placeholdered: %q", out)
	}
}

func TestVideoEmbedUsesThumbnailProxy(t *testing.T) {
	card := content.Card{ID: "c", Type: content.TypeVideoEmbed, VideoURL: "https://youtu.be/dQw4w9WgXcQ"}
	out := renderToString(t, VideoEmbed(card))
	if !strings.Contains(out, `/thumb/dQw4w9WgXcQ`) {
		t.Errorf("facade should load the proxied thumbnail: %q", out)
	}
	if !strings.Contains(out, "youtube-nocookie.com/embed/dQw4w9WgXcQ") {
		t.Errorf("facade should carry the canonical embed URL: %q", out)
	}
}

func TestVideoEmbedWithoutIDShowsPlaceholder(t *testing.T) {
	card := content.Card{ID: "c", Type: content.TypeVideoEmbed, VideoURL: "https://example.com/nope"}
	out := renderToString(t, VideoEmbed(card))
	if !strings.Contains(out, "video-placeholder") {
		t.Errorf("unresolvable video should degrade to the placeholder: %q", out)
	}
}

func TestPDFCarouselRendersAllDocsOneVisible(t *testing.T) {
	card := content.Card{
		ID:       "c",
		Type:     content.TypePDFCarousel,
		PDFPaths: []string{"/public/a.pdf", "/public/b.pdf", "/public/c.pdf"},
	}
	out := renderToString(t, PDFCarousel("s", card, widget.NewDocCarousel(3, 1)))

	// All three documents stay in the DOM so switching never reloads one.
	if got := strings.Count(out, "<iframe"); got != 3 {
		t.Errorf("want 3 persistent iframes, got %d: %q", got, out)
	}
	// Exactly the two inactive wrappers carry hidden.
	if got := strings.Count(out, " hidden"); got != 2 {
		t.Errorf("want 2 hidden doc frames, got %d", got)
	}
	if !strings.Contains(out, "2 / 3") {
		t.Errorf("doc counter should show the active position: %q", out)
	}
}

func TestActionCarouselWindowsItems(t *testing.T) {
	items := []content.ActionItem{
		{Title: "one"}, {Title: "two"}, {Title: "three"}, {Title: "four"}, {Title: "five"},
	}
	card := content.Card{ID: "c", Type: content.TypeActionCarousel, ActionItems: items}

	out := renderToString(t, ActionCarousel("s", card, widget.NewPagedCarousel(5, 3, 3)))
	for _, want := range []string{"four", "five"} {
		if !strings.Contains(out, want) {
			t.Errorf("visible window should include %q: %q", want, out)
		}
	}
	if strings.Contains(out, "<h4>one</h4>") {
		t.Errorf("items before the window must not render: %q", out)
	}
}

func TestActionCarouselDisablesEdges(t *testing.T) {
	items := []content.ActionItem{{Title: "a"}, {Title: "b"}}
	card := content.Card{ID: "c", Type: content.TypeActionCarousel, ActionItems: items}
	out := renderToString(t, ActionCarousel("s", card, widget.NewPagedCarousel(2, 3, 0)))
	if strings.Count(out, " disabled") != 2 {
		t.Errorf("both controls should be disabled when everything fits: %q", out)
	}
}

func TestDualExpandableNeverRendersBothOpen(t *testing.T) {
	card := content.Card{
		ID:   "c",
		Type: content.TypeDualExpandable,
		Panels: []content.Panel{
			{Title: "L", Details: "left detail"},
			{Title: "R", Details: "right detail"},
		},
	}
	for _, side := range []widget.DualSide{widget.DualNone, widget.DualLeft, widget.DualRight} {
		out := renderToString(t, DualExpandableCard("s", card, widget.DualExpandable{Open: side}))
		open := strings.Count(out, "dual-panel-open")
		if side == widget.DualNone && open != 0 {
			t.Errorf("side none: %d panels open", open)
		}
		if side != widget.DualNone && open != 1 {
			t.Errorf("side %v: %d panels open, want 1", side, open)
		}
	}
}

func TestInfoCarouselShowsActiveSlide(t *testing.T) {
	card := content.Card{
		ID:   "c",
		Type: content.TypeInfoCarousel,
		Slides: []content.Slide{
			{Title: "first"}, {Title: "second"}, {Title: "third"},
		},
	}
	out := renderToString(t, InfoCarouselCard("s", card, widget.NewInfoCarousel(3, 2)))
	if !strings.Contains(out, `data-index="2"`) {
		t.Errorf("active index missing: %q", out)
	}
	// The two inactive slides are hidden, the active one is not.
	if got := strings.Count(out, " hidden"); got != 2 {
		t.Errorf("want 2 hidden slides, got %d", got)
	}
}

func TestRoleUseCasesRendersPanels(t *testing.T) {
	card := content.Card{
		ID:   "c",
		Type: content.TypeRoleUseCases,
		RoleUseCases: []content.RoleUseCase{
			{Role: "PM", Scenario: "sorting feedback", Workflow: []string{"export", "ask", "verify"}},
		},
	}
	out := renderToString(t, RoleUseCases("s", card))
	if !strings.Contains(out, `role="dialog"`) {
		t.Errorf("panel markup missing: %q", out)
	}
	if !strings.Contains(out, "<ol") {
		t.Errorf("workflow should render as an ordered list: %q", out)
	}
	if strings.Contains(out, "Business context") {
		t.Errorf("absent business context must be omitted: %q", out)
	}
}

func TestCaseStudyWithoutPayloadRendersShell(t *testing.T) {
	card := content.Card{ID: "c", Type: content.TypeCaseStudy, Title: "Case"}
	out := renderToString(t, CaseStudyCard(card))
	if !strings.Contains(out, "Case") {
		t.Errorf("title should render: %q", out)
	}
	if strings.Contains(out, "Challenge") {
		t.Errorf("missing payload should render nothing: %q", out)
	}
}

func TestCardContentIsEscaped(t *testing.T) {
	card := content.Card{ID: "c", Title: "<script>x()</script>", Content: "<img onerror=x>"}
	out := renderToString(t, Card("s", card))
	if strings.Contains(out, "<script>") || strings.Contains(out, "<img onerror") {
		t.Errorf("card text must be escaped: %q", out)
	}
}
