package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	ugc = bluemonday.UGCPolicy()
	md  = goldmark.New(goldmark.WithExtensions(extension.GFM))
)

// SanitizeHTML strips anything from CMS-authored HTML that a user-generated
// content policy does not allow.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(ugc.Sanitize(s))
}

// Markdown renders src and sanitizes the result. A rendering failure yields
// the escaped source.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		slog.Warn("rendering markdown failed", "error", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return SanitizeHTML(buf.String())
}

// Body renders a CMS rich-text field. Values that already look like HTML are
// sanitized, anything else is treated as markdown.
func Body(s string) template.HTML {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "<") {
		return SanitizeHTML(trimmed)
	}
	return Markdown(trimmed)
}
