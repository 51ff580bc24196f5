package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
	"github.com/Sesamsesam/AI-foundations-sub000/richtext"
	"github.com/Sesamsesam/AI-foundations-sub000/widget"
)

// component wraps a buffer-building function as a templ component.
func component(build func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		build(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Card is the dispatcher: it resolves a card's type to its leaf renderer.
// The switch is total over the declared type set with a default arm, so an
// unknown or missing type degrades to the generic title+content card and a
// malformed entry never breaks the page. Interactive cards start from
// their zero widget state; fragment handlers re-render them with live
// state.
func Card(sectionID string, c content.Card) templ.Component {
	switch c.Type {
	case content.TypeAlert:
		return Alert(c)
	case content.TypeCourseCard:
		return CourseCard(sectionID, c)
	case content.TypeToolCard:
		return ToolCard(sectionID, c)
	case content.TypePDFCarousel:
		return PDFCarousel(sectionID, c, widget.NewDocCarousel(len(c.PDFPaths), 0))
	case content.TypeSlideViewer:
		return SlideViewer(c)
	case content.TypeVideoEmbed:
		return VideoEmbed(c)
	case content.TypeActionCarousel:
		return ActionCarousel(sectionID, c, widget.NewPagedCarousel(len(c.ActionItems), 3, 0))
	case content.TypeRoleUseCases:
		return RoleUseCases(sectionID, c)
	case content.TypeCaseStudy:
		return CaseStudyCard(c)
	case content.TypeCallout:
		return Callout(c)
	case content.TypeChecklist:
		return Checklist(c)
	case content.TypeLinksGrid:
		return LinksGrid(c)
	case content.TypeText:
		return GenericCard(c)
	case content.TypeDualExpandable:
		return DualExpandableCard(sectionID, c, widget.DualExpandable{})
	case content.TypeInfoCarousel:
		return InfoCarouselCard(sectionID, c, widget.NewInfoCarousel(len(c.Slides), 0))
	default:
		return GenericCard(c)
	}
}

// GenericCard is the fallback renderer: a plain title+content box. It is
// also the renderer for the "text" type.
func GenericCard(c content.Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="card card-text">`)
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
