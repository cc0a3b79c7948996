// Package content holds the text/markup filter collaborators consumed by the
// card rendering layer: markdown-to-sanitized-HTML conversion, relative time
// formatting, and the default attachment classifier. All filters are pure
// functions from raw value to display string.
package content

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

var sanitizer = newSanitizer()

func newSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// RenderSafeHTML converts post body markdown into sanitized HTML. This runs
// in the upstream data layer; the card core treats the result as opaque
// pre-sanitized markup.
func RenderSafeHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return sanitizer.Sanitize(buf.String()), nil
}

// SanitizeHTML strips unsafe markup from already-rendered HTML, for bodies
// that arrive rendered from a remote node.
func SanitizeHTML(raw string) string {
	return sanitizer.Sanitize(raw)
}
