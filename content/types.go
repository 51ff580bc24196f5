// Package content defines the guide's document model: an ordered tree of
// tabs, sections, and cards. The tree is pure data — rendering behavior
// lives in the views and layout packages.
package content

// CardType discriminates the card union. Unknown values fall back to the
// generic title+content renderer, never an error.
type CardType string

const (
	TypeAlert          CardType = "alert"
	TypeCourseCard     CardType = "courseCard"
	TypeToolCard       CardType = "toolCard"
	TypePDFCarousel    CardType = "pdfCarousel"
	TypeSlideViewer    CardType = "slideViewer"
	TypeVideoEmbed     CardType = "videoEmbed"
	TypeActionCarousel CardType = "actionCarousel"
	TypeRoleUseCases   CardType = "roleUseCases"
	TypeCaseStudy      CardType = "caseStudy"
	TypeCallout        CardType = "callout"
	TypeChecklist      CardType = "checklist"
	TypeLinksGrid      CardType = "linksGrid"
	TypeText           CardType = "text"
	TypeDualExpandable CardType = "dualExpandable"
	TypeInfoCarousel   CardType = "infoCarousel"
)

// AllCardTypes returns every declared card type. Used by the dispatcher
// coverage test to catch drift between the model and the renderers.
func AllCardTypes() []CardType {
	return []CardType{
		TypeAlert, TypeCourseCard, TypeToolCard, TypePDFCarousel,
		TypeSlideViewer, TypeVideoEmbed, TypeActionCarousel,
		TypeRoleUseCases, TypeCaseStudy, TypeCallout, TypeChecklist,
		TypeLinksGrid, TypeText, TypeDualExpandable, TypeInfoCarousel,
	}
}

// Document is the full guide: an ordered list of tabs.
type Document struct {
	Tabs []Tab `yaml:"tabs"`
}

// Tab is a top-level navigable unit. ID is stable — it keys preference
// persistence and hash routing.
type Tab struct {
	ID       string    `yaml:"id"`
	Label    string    `yaml:"label"`
	Hero     Hero      `yaml:"hero"`
	Sections []Section `yaml:"sections"`
}

// Hero is the banner at the top of a tab.
type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	EmbedURL string `yaml:"embedUrl"` // optional video, any supported URL shape
}

// Section groups cards under a title. ID must be unique document-wide:
// it doubles as the scroll anchor and the hash-route target.
type Section struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	SidebarTitle string `yaml:"sidebarTitle"` // short form for the timeline
	Intro        string `yaml:"intro"`
	Centered     bool   `yaml:"centered"`
	Cards        []Card `yaml:"cards"`
}

// Card is the discriminated union the dispatcher renders. Exactly one of
// the type-specific payload groups is expected to be populated, consistent
// with Type; renderers treat missing optional payload as "render nothing".
type Card struct {
	ID        string   `yaml:"id"`
	Type      CardType `yaml:"type"`
	Title     string   `yaml:"title"`
	Content   string   `yaml:"content"`
	FullWidth bool     `yaml:"fullWidth"` // forces full-width for grid types

	// alert
	AlertType string `yaml:"alertType"` // "info", "warning", "important"

	// courseCard
	Duration   string   `yaml:"duration"`
	Level      string   `yaml:"level"`
	Provider   string   `yaml:"provider"`
	Highlights []string `yaml:"highlights"`

	// toolCard
	Category   string `yaml:"category"`
	Pricing    string `yaml:"pricing"`
	UsageNotes string `yaml:"usageNotes"` // revealed on expand

	// courseCard / toolCard / callout external link
	URL string `yaml:"url"`

	// actionCarousel
	ActionItems []ActionItem `yaml:"actionItems"`

	// roleUseCases
	RoleUseCases []RoleUseCase `yaml:"roleUseCases"`

	// caseStudy
	CaseStudy *CaseStudy `yaml:"caseStudy"`

	// linksGrid
	Links []Link `yaml:"links"`

	// checklist
	Items          []string `yaml:"items"`
	ChecklistLinks []Link   `yaml:"checklistLinks"`

	// pdfCarousel
	PDFPaths []string `yaml:"pdfPaths"`

	// slideViewer
	SlideURL string `yaml:"slideUrl"`

	// videoEmbed — either a bare id or any supported URL shape
	VideoID  string `yaml:"videoId"`
	VideoURL string `yaml:"videoUrl"`

	// dualExpandable — expects exactly two panels
	Panels []Panel `yaml:"panels"`

	// infoCarousel
	Slides []Slide `yaml:"slides"`
}

// ActionItem is one entry in an action carousel.
type ActionItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	URL         string `yaml:"url"`
}

// RoleUseCase is a summary card that opens a slide-in detail panel.
type RoleUseCase struct {
	Role            string   `yaml:"role"`
	Scenario        string   `yaml:"scenario"`
	Tools           []string `yaml:"tools"`
	Workflow        []string `yaml:"workflow"` // ordered steps
	Outcome         string   `yaml:"outcome"`
	BusinessContext string   `yaml:"businessContext"`
	CTALabel        string   `yaml:"ctaLabel"`
	CTAURL          string   `yaml:"ctaUrl"`
}

// CaseStudy is the payload for a caseStudy card.
type CaseStudy struct {
	Company   string   `yaml:"company"`
	Challenge string   `yaml:"challenge"`
	Approach  string   `yaml:"approach"`
	Results   []string `yaml:"results"`
	Quote     string   `yaml:"quote"`
	Source    string   `yaml:"source"`
}

// Link is a labelled URL used by linksGrid and checklist cards.
type Link struct {
	Label       string `yaml:"label"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// Panel is one half of a dualExpandable card.
type Panel struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Details string `yaml:"details"` // revealed on expand
}

// Slide is one rotating entry in an infoCarousel.
type Slide struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Icon  string `yaml:"icon"`
}

// SidebarLabel returns the short timeline label, falling back to the title.
func (s Section) SidebarLabel() string {
	if s.SidebarTitle != "" {
		return s.SidebarTitle
	}
	return s.Title
}
