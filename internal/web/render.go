// Package web renders the site's HTML pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/whitemassif/website/internal/seo"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page is the data every template receives.
type Page struct {
	Meta   seo.Metadata
	JSONLD template.HTML
	Year   int
	Data   any
}

// NewPage wraps data with its metadata and structured data.
func NewPage(meta seo.Metadata, jsonld template.HTML, data any) Page {
	return Page{Meta: meta, JSONLD: jsonld, Year: time.Now().Year(), Data: data}
}

// Renderer executes named page templates inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"body":     Body,
	"markdown": Markdown,
	"date":     formatDate,
	"join":     strings.Join,
}

// Pages names every page template the site serves. NewRenderer fails when
// one of them is missing.
var Pages = []string{
	"home", "about", "blog_list", "blog_post", "services", "service",
	"portfolio", "work", "team", "clients", "careers", "landing",
	"contact", "thank_you", "feedback", "not_found",
}

// NewRenderer parses the layout and every page template.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f, err)
		}
		r.pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}

	for _, name := range Pages {
		if _, ok := r.pages[name]; !ok {
			return nil, fmt.Errorf("missing page template %q", name)
		}
	}
	return r, nil
}

// Render writes page name with the given status. The page is rendered into a
// buffer first so a template error still produces a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, p Page) {
	t, ok := r.pages[name]
	if !ok {
		slog.Error("unknown page template", "template", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", p); err != nil {
		slog.Error("rendering page failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("writing page failed", "template", name, "error", err)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}
