package guide

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SiteConfig holds all configuration for a guide site.
type SiteConfig struct {
	Name        string `koanf:"name"`        // Site name (default "AI Foundations")
	URL         string `koanf:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"` // Site description for meta tags
	Author      string `koanf:"author"`      // Author name for JSON-LD

	Addr         string `koanf:"addr"`          // Listen address (default ":3000")
	DatabasePath string `koanf:"database_path"` // SQLite path for visitor prefs (default "data/guide.db")
	ContentPath  string `koanf:"content_path"`  // Guide document YAML; empty uses the embedded document
	ThumbCacheDir string `koanf:"thumb_cache_dir"` // Thumbnail disk cache (default "data/thumbs")

	SessionSecret string `koanf:"session_secret"` // Required: session encryption secret
	CookieSecure  bool   `koanf:"cookie_secure"`  // Set true for HTTPS

	DocumentCacheTTL time.Duration `koanf:"document_cache_ttl"` // Document reload interval (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "AI Foundations"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/guide.db"
	}
	if c.ThumbCacheDir == "" {
		c.ThumbCacheDir = "data/thumbs"
	}
	if c.DocumentCacheTTL == 0 {
		c.DocumentCacheTTL = 5 * time.Minute
	}
}

// LoadConfig reads a YAML config file and overlays GUIDE_-prefixed
// environment variables (GUIDE_SESSION_SECRET maps to session_secret).
// An empty path skips the file and uses environment values only.
func LoadConfig(path string) (SiteConfig, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return SiteConfig{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("GUIDE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GUIDE_"))
	}), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("load config env: %w", err)
	}

	var cfg SiteConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
