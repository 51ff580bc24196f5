package guide

import (
	"sync"
	"time"

	"github.com/Sesamsesam/AI-foundations-sub000/content"
)

// DocCache holds the parsed guide document with a TTL, so a deployment can
// edit the content file and see it picked up without a restart. An empty
// path pins the embedded document for the life of the process.
type DocCache struct {
	mu      sync.RWMutex
	doc     *content.Document
	fetched time.Time
	ttl     time.Duration
	path    string
}

// NewDocCache creates a DocCache reading from path, or the embedded
// document when path is empty.
func NewDocCache(path string, ttl time.Duration) *DocCache {
	return &DocCache{path: path, ttl: ttl}
}

func (c *DocCache) valid() bool {
	if c.doc == nil {
		return false
	}
	if c.path == "" {
		return true
	}
	return time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *DocCache) Invalidate() {
	c.mu.Lock()
	c.doc = nil
	c.mu.Unlock()
}

// Document returns the current document, reloading it when the TTL has
// lapsed. A reload that fails to parse keeps serving the last good
// document rather than taking the site down on a content typo.
func (c *DocCache) Document() (*content.Document, error) {
	c.mu.RLock()
	if c.valid() {
		doc := c.doc
		c.mu.RUnlock()
		return doc, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.doc, nil
	}

	doc, err := c.load()
	if err != nil {
		if c.doc != nil {
			c.fetched = time.Now()
			return c.doc, nil
		}
		return nil, err
	}
	c.doc = doc
	c.fetched = time.Now()
	return doc, nil
}

func (c *DocCache) load() (*content.Document, error) {
	if c.path == "" {
		return content.LoadDefault()
	}
	return content.LoadFile(c.path)
}
