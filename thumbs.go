package guide

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"

	"github.com/Sesamsesam/AI-foundations-sub000/widget"
)

const (
	maxThumbWidth = 640
	thumbQuality  = 80

	// The upstream serves a 120x90 stub instead of a 404 for some missing
	// qualities; anything that small means "try the next quality".
	minThumbWidth = 160
)

// thumbProxy fetches, downscales, and caches video thumbnails so pages
// never load images from the video host directly. It walks the quality
// chain from best to worst and keeps the first usable hit on disk.
type thumbProxy struct {
	cacheDir string
	limiter  *ipLimiter
	client   *http.Client

	// baseURL overrides the upstream host; empty means the real one.
	baseURL string
}

func newThumbProxy(cacheDir string, limiter *ipLimiter) (*thumbProxy, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &thumbProxy{
		cacheDir: cacheDir,
		limiter:  limiter,
		client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (a *App) handleThumb(c echo.Context) error {
	id := c.Param("id")
	if widget.ExtractVideoID(id) != id {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	cached := filepath.Join(a.thumbs.cacheDir, id+".jpg")
	if data, err := os.ReadFile(cached); err == nil {
		return c.Blob(http.StatusOK, "image/jpeg", data)
	}

	if !a.thumbs.limiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests)
	}

	data, err := a.thumbs.fetch(id)
	if err != nil {
		c.Logger().Warnf("thumbnail %s: %v", id, err)
		return echo.NewHTTPError(http.StatusNotFound)
	}

	if err := os.WriteFile(cached, data, 0o644); err != nil {
		c.Logger().Warnf("thumbnail cache write %s: %v", id, err)
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

// fetch walks the quality chain and returns the first usable thumbnail,
// downscaled and re-encoded.
func (p *thumbProxy) fetch(id string) ([]byte, error) {
	var lastErr error
	for _, quality := range widget.ThumbnailQualities {
		img, err := p.fetchOne(p.qualityURL(id, quality))
		if err != nil {
			lastErr = err
			continue
		}
		return encodeThumb(img)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no qualities configured")
	}
	return nil, lastErr
}

func (p *thumbProxy) qualityURL(id, quality string) string {
	if p.baseURL == "" {
		return widget.ThumbnailURL(id, quality)
	}
	return p.baseURL + "/" + id + "/" + quality + ".jpg"
}

func (p *thumbProxy) fetchOne(url string) (image.Image, error) {
	resp, err := p.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode thumbnail: %w", err)
	}
	if img.Bounds().Dx() < minThumbWidth {
		return nil, fmt.Errorf("placeholder stub (%dpx wide)", img.Bounds().Dx())
	}
	return img, nil
}

// encodeThumb downscales to maxThumbWidth if needed and encodes as JPEG.
func encodeThumb(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxThumbWidth {
		newH := h * maxThumbWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxThumbWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
