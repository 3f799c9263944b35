package util

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicy  = buildRichTextPolicy()
	plainTextPolicy = bluemonday.StrictPolicy()
)

// buildRichTextPolicy builds the allow-list for editor-produced rich text
// (Quill-compatible tags and attributes). Everything else is stripped,
// including script elements and event-handler attributes.
func buildRichTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "strong", "em", "u", "s", "a", "img",
		"ul", "ol", "li", "blockquote", "pre", "code",
		"h1", "h2", "h3", "h4", "h5", "h6", "span", "div",
	)

	p.AllowAttrs("href", "title", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowAttrs("class", "style").OnElements("span")
	p.AllowAttrs("class").OnElements("div", "pre", "code")
	p.AllowStyles("color", "background-color", "font-size").OnElements("span")

	p.AllowStandardURLs()

	return p
}

// SanitizeHTML filters rich-text content down to the allow-listed subset.
// Empty input passes through unchanged. Idempotent.
func SanitizeHTML(content string) string {
	if content == "" {
		return content
	}
	return richTextPolicy.Sanitize(content)
}

// SanitizeText strips all markup and surrounding whitespace, leaving only
// text content. Idempotent.
func SanitizeText(text string) string {
	if text == "" {
		return text
	}
	return strings.TrimSpace(plainTextPolicy.Sanitize(text))
}
