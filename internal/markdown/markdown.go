// Package markdown converts Markdown text to sanitized HTML that is safe to
// inject into a trusted document context.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		// Raw HTML passes through the converter and is neutralized by the
		// sanitizer policy below.
		html.WithUnsafe(),
	),
)

var policy = bluemonday.UGCPolicy()

// Render converts Markdown to HTML and strips active content (script tags,
// inline event handlers, dangerous URL schemes). Malformed markdown never
// fails: unrecognized syntax passes through as literal text.
func Render(content string) string {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(content), &buf); err != nil {
		return policy.Sanitize(content)
	}
	return policy.Sanitize(buf.String())
}
