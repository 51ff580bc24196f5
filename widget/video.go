package widget

import (
	"net/url"
	"strings"
)

// Thumbnail quality names in descending order. The thumbnail proxy walks
// this chain until a fetch succeeds, then falls back to the static play
// placeholder.
var ThumbnailQualities = []string{"maxresdefault", "hqdefault", "mqdefault"}

// ExtractVideoID normalizes the supported YouTube URL shapes to the bare
// video id: the canonical watch URL, the short youtu.be form, embed URLs,
// and shorts URLs. A value that is already a plausible bare id passes
// through. Returns "" when no id can be recovered.
func ExtractVideoID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if isBareID(raw) {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch host {
	case "youtu.be":
		return cleanID(strings.TrimPrefix(u.Path, "/"))
	case "youtube.com", "youtube-nocookie.com", "m.youtube.com":
		switch {
		case u.Path == "/watch":
			return cleanID(u.Query().Get("v"))
		case strings.HasPrefix(u.Path, "/embed/"):
			return cleanID(strings.TrimPrefix(u.Path, "/embed/"))
		case strings.HasPrefix(u.Path, "/shorts/"):
			return cleanID(strings.TrimPrefix(u.Path, "/shorts/"))
		}
	}
	return ""
}

// cleanID strips any trailing path or query residue and validates.
func cleanID(s string) string {
	if i := strings.IndexAny(s, "/?&"); i >= 0 {
		s = s[:i]
	}
	if !isBareID(s) {
		return ""
	}
	return s
}

// isBareID accepts the 11-character id alphabet YouTube uses.
func isBareID(s string) bool {
	if len(s) != 11 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// EmbedURL builds the privacy-enhanced embed URL for a video id.
func EmbedURL(id string) string {
	return "https://www.youtube-nocookie.com/embed/" + url.PathEscape(id)
}

// ThumbnailURL builds the upstream thumbnail URL for one quality step.
func ThumbnailURL(id, quality string) string {
	return "https://i.ytimg.com/vi/" + url.PathEscape(id) + "/" + quality + ".jpg"
}
