// Package guide is a server-rendered engine for tabbed learning guides
// built with Go, Echo, and templ. A guide is a YAML document of tabs,
// sections, and typed cards; the engine renders the page shell, dispatches
// each card to its renderer, and drives the interactive cards through
// HTMX fragment endpoints backed by small server-side state machines.
package guide

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central guide application. It wires together the document
// cache, visitor preference store, thumbnail proxy, handlers, and
// middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Prefs  *PrefStore
	Docs   *DocCache

	thumbs       *thumbProxy
	customRoutes []func(*App)
	staticDir    string
}

// New creates a guide App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the preference store, document cache, thumbnail proxy,
// middleware, and routes, then starts the server.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("guide: SessionSecret is required")
	}

	prefs, err := NewPrefStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("guide: init preference store: %w", err)
	}
	a.Prefs = prefs

	a.Docs = NewDocCache(a.Config.ContentPath, a.Config.DocumentCacheTTL)
	if _, err := a.Docs.Document(); err != nil {
		return fmt.Errorf("guide: load document: %w", err)
	}

	a.thumbs, err = newThumbProxy(a.Config.ThumbCacheDir, newIPLimiter(30, time.Minute))
	if err != nil {
		return fmt.Errorf("guide: init thumbnail proxy: %w", err)
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded engine assets are served under /public/ and fall through to
	// the user's static dir for everything else (htmx.min.js, pdfs, fonts).
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/guide.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/guide.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	// Pages
	e.GET("/", a.handleHome)
	e.GET("/tab/:id/", a.handleTab)

	// Deep-link resolution for hash navigation, and the timeline rule for
	// clients that defer the precedence decision to the server
	e.GET("/api/section/:id", a.handleSectionLookup)
	e.GET("/api/timeline/:tab/active", a.handleTimelineActive)

	// Interactive card fragments
	e.GET("/fragment/action/:section/:card/", a.handleActionFragment)
	e.GET("/fragment/info/:section/:card/", a.handleInfoFragment)
	e.GET("/fragment/dual/:section/:card/", a.handleDualFragment)

	// Visitor preferences
	e.POST("/prefs/", a.handleSavePref)

	// Thumbnail proxy
	e.GET("/thumb/:id", a.handleThumb)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Prefs != nil {
		return a.Prefs.Close()
	}
	return nil
}
