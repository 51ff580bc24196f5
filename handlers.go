package guide

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
	"github.com/Sesamsesam/AI-foundations-sub000/views"
	"github.com/Sesamsesam/AI-foundations-sub000/widget"
)

func (a *App) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

// handleHome renders the visitor's last active tab, falling back to the
// first declared tab when the preference is unset or no longer valid.
func (a *App) handleHome(c echo.Context) error {
	doc, err := a.Docs.Document()
	if err != nil {
		return err
	}
	visitor := visitorID(c)
	active := doc.DefaultTab()
	if id := a.Prefs.ActiveTab(visitor); id != "" {
		if tab, ok := doc.TabByID(id); ok {
			active = tab
		}
	}
	return Render(c, views.Page(a.viewConfig(), doc, active, a.Prefs.DarkMode(visitor)))
}

// handleTab renders one tab, full page or HTMX partial, and records it as
// the visitor's active tab.
func (a *App) handleTab(c echo.Context) error {
	doc, err := a.Docs.Document()
	if err != nil {
		return err
	}
	tab, ok := doc.TabByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	visitor := visitorID(c)
	if visitor != "" {
		if err := a.Prefs.Set(visitor, PrefActiveTab, tab.ID); err != nil {
			c.Logger().Warnf("save active tab: %v", err)
		}
	}
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Push-Url", "/tab/"+tab.ID+"/")
		return Render(c, views.TabPartial(tab))
	}
	return Render(c, views.Page(a.viewConfig(), doc, tab, a.Prefs.DarkMode(visitor)))
}

// handleSectionLookup resolves a section id to its owning tab. The client
// script calls this when the page loads with a hash so it can switch to
// the right tab before scrolling.
func (a *App) handleSectionLookup(c echo.Context) error {
	doc, err := a.Docs.Document()
	if err != nil {
		return err
	}
	tab, ok := doc.TabForSection(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown section"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"tab":     tab.ID,
		"section": c.Param("id"),
	})
}

// handleTimelineActive applies the timeline activation rule server-side:
// the client reports which sections intersect the top band and whether the
// page is near the bottom, and gets back the node to highlight. An empty
// active id means "keep the current highlight".
func (a *App) handleTimelineActive(c echo.Context) error {
	doc, err := a.Docs.Document()
	if err != nil {
		return err
	}
	tab, ok := doc.TabByID(c.Param("tab"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown tab"})
	}
	order := make([]string, len(tab.Sections))
	for i, s := range tab.Sections {
		order[i] = s.ID
	}
	visible := make(map[string]bool)
	for _, id := range strings.Split(c.QueryParam("visible"), ",") {
		if id != "" {
			visible[id] = true
		}
	}
	nearBottom := c.QueryParam("bottom") == "true"
	return c.JSON(http.StatusOK, map[string]string{
		"active": widget.ActiveSection(order, visible, nearBottom),
	})
}

// fragmentCard resolves the section/card pair of a fragment request,
// checking the card is of the expected type so a crafted URL cannot
// render a card through the wrong state machine.
func (a *App) fragmentCard(c echo.Context, wantType content.CardType) (string, content.Card, error) {
	doc, err := a.Docs.Document()
	if err != nil {
		return "", content.Card{}, err
	}
	sectionID := c.Param("section")
	card, ok := doc.CardByID(sectionID, c.Param("card"))
	if !ok || card.Type != wantType {
		return "", content.Card{}, echo.NewHTTPError(http.StatusNotFound)
	}
	return sectionID, card, nil
}

func (a *App) handleActionFragment(c echo.Context) error {
	sectionID, card, err := a.fragmentCard(c, content.TypeActionCarousel)
	if err != nil {
		return err
	}
	index, _ := strconv.Atoi(c.QueryParam("i"))
	per, _ := strconv.Atoi(c.QueryParam("per"))
	if max := widget.PerViewFor(widget.MediumBreakpoint); per < 1 || per > max {
		per = max
	}
	st := widget.NewPagedCarousel(len(card.ActionItems), per, index)
	return Render(c, views.ActionCarousel(sectionID, card, st))
}

func (a *App) handleInfoFragment(c echo.Context) error {
	sectionID, card, err := a.fragmentCard(c, content.TypeInfoCarousel)
	if err != nil {
		return err
	}
	index, _ := strconv.Atoi(c.QueryParam("i"))
	st := widget.NewInfoCarousel(len(card.Slides), index)
	switch c.QueryParam("move") {
	case "next":
		st.Next()
	case "prev":
		st.Prev()
	default:
		if jump := c.QueryParam("jump"); jump != "" {
			i, err := strconv.Atoi(jump)
			if err == nil {
				st.JumpTo(i)
			}
		}
	}
	return Render(c, views.InfoCarouselCard(sectionID, card, st))
}

func (a *App) handleDualFragment(c echo.Context) error {
	sectionID, card, err := a.fragmentCard(c, content.TypeDualExpandable)
	if err != nil {
		return err
	}
	st := widget.DualExpandable{Open: widget.ParseDualSide(c.QueryParam("side"))}
	return Render(c, views.DualExpandableCard(sectionID, card, st))
}

// handleSavePref persists one visitor preference. Only the known keys are
// accepted, and active_tab must name a real tab.
func (a *App) handleSavePref(c echo.Context) error {
	visitor := visitorID(c)
	if visitor == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "no session")
	}
	key := c.FormValue("key")
	value := c.FormValue("value")
	switch key {
	case PrefDarkMode:
		if value != "true" && value != "false" {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid value")
		}
	case PrefActiveTab:
		doc, err := a.Docs.Document()
		if err != nil {
			return err
		}
		if _, ok := doc.TabByID(value); !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown tab")
		}
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown key")
	}
	if err := a.Prefs.Set(visitor, key, value); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.viewConfig()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
