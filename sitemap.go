package guide

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sesamsesam/AI-foundations-sub000/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

func (a *App) handleSitemap(c echo.Context) error {
	doc, err := a.Docs.Document()
	if err != nil {
		return err
	}
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: views.BuildURL(base)},
	}
	for _, t := range doc.Tabs {
		urls = append(urls, sitemapURL{Loc: views.BuildURL(base, "tab", t.ID)})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
