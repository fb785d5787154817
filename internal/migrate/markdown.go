package migrate

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

var md = goldmark.New()

// toHTML renders markdown to HTML.
func toHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// doc accumulates markdown blocks.
type doc struct {
	b strings.Builder
}

func (d *doc) heading(level int, text string) {
	if text == "" {
		return
	}
	d.block(strings.Repeat("#", level) + " " + oneLine(text))
}

func (d *doc) para(text string) {
	if text = strings.TrimSpace(text); text != "" {
		d.block(text)
	}
}

func (d *doc) list(items []string) {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		if it = oneLine(it); it != "" {
			lines = append(lines, "- "+it)
		}
	}
	if len(lines) > 0 {
		d.block(strings.Join(lines, "\n"))
	}
}

func (d *doc) block(s string) {
	if d.b.Len() > 0 {
		d.b.WriteString("\n\n")
	}
	d.b.WriteString(s)
}

func (d *doc) html() (string, error) {
	return toHTML(d.b.String())
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
