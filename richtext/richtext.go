// Package richtext renders the lightweight inline markup allowed in card
// and section body text (bold, italic, inline code, links, bullet and
// numbered lists, quotes). Card bodies are short-form content, so headings,
// tables, and images are deliberately not supported.
package richtext

import (
	"bytes"
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`__(.+?)__`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`_([^_]+)_`)
	reInlineCode       = regexp.MustCompile("`([^`]+)`")
	reLink             = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
	reOrderedItem      = regexp.MustCompile(`^(\d+)\.\s`)
)

// RenderBody writes the HTML for body text to buf. Consecutive non-blank
// lines join into one paragraph; list items and quotes open and close
// their containers as the line kind changes.
func RenderBody(buf *bytes.Buffer, body string) {
	inPara := false
	inList := false
	inOrdered := false
	inQuote := false

	flushPara := func() {
		if inPara {
			buf.WriteString("</p>")
			inPara = false
		}
	}
	flushList := func() {
		if inList {
			buf.WriteString("</ul>")
			inList = false
		}
	}
	flushOrdered := func() {
		if inOrdered {
			buf.WriteString("</ol>")
			inOrdered = false
		}
	}
	flushQuote := func() {
		if inQuote {
			buf.WriteString("</blockquote>")
			inQuote = false
		}
	}

	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			flushPara()
			flushList()
			flushOrdered()
			flushQuote()
			continue
		}

		switch {
		case strings.HasPrefix(line, "- "):
			if !inList {
				flushPara()
				flushOrdered()
				flushQuote()
				buf.WriteString("<ul>")
				inList = true
			}
			buf.WriteString("<li>")
			buf.WriteString(FormatInline(strings.TrimSpace(line[2:])))
			buf.WriteString("</li>")
		case reOrderedItem.MatchString(line):
			if !inOrdered {
				flushPara()
				flushList()
				flushQuote()
				buf.WriteString("<ol>")
				inOrdered = true
			}
			item := reOrderedItem.ReplaceAllString(line, "")
			buf.WriteString("<li>")
			buf.WriteString(FormatInline(strings.TrimSpace(item)))
			buf.WriteString("</li>")
		case strings.HasPrefix(line, "> "):
			if !inQuote {
				flushPara()
				flushList()
				flushOrdered()
				buf.WriteString("<blockquote>")
				inQuote = true
			}
			buf.WriteString(FormatInline(strings.TrimSpace(line[2:])))
		default:
			if !inPara {
				flushList()
				flushOrdered()
				flushQuote()
				buf.WriteString("<p>")
				inPara = true
			} else {
				buf.WriteString(" ")
			}
			buf.WriteString(FormatInline(strings.TrimSpace(line)))
		}
	}
	flushPara()
	flushList()
	flushOrdered()
	flushQuote()
}

// FormatInline applies inline formatting (links, inline code, bold,
// italic) to one line, escaping everything else.
func FormatInline(s string) string {
	escaped := html.EscapeString(s)
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		if len(match) < 3 {
			return m
		}
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := `class="body-link"`
		if len(match) >= 4 && match[3] == "^" {
			attrs += ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `" ` + attrs + `>` + match[1] + `</a>`
	})
	// Inline code: swap for placeholders so the bold/italic regexes never
	// format content inside backticks.
	var codeSpans []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reInlineCode.FindStringSubmatch(m)
		placeholder := "\x00IC" + strconv.Itoa(len(codeSpans)) + "\x00"
		codeSpans = append(codeSpans, "<code>"+match[1]+"</code>")
		return placeholder
	})
	// Bold/italic only outside HTML tags so URLs in href survive intact.
	escaped = applyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnderscore.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicUnderscore.ReplaceAllString(seg, "<em>$1</em>")
		return seg
	})
	for i, code := range codeSpans {
		escaped = strings.Replace(escaped, "\x00IC"+strconv.Itoa(i)+"\x00", code, 1)
	}
	return escaped
}

// applyOutsideTags applies fn only to text segments outside HTML tags.
func applyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// SafeURL validates and sanitizes a URL for use in HTML attributes.
// Relative paths and fragments pass through; absolute URLs must carry an
// allowed scheme.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
