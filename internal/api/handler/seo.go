package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/whitemassif/website/internal/seo"
)

// SitemapSource returns the current sitemap document.
type SitemapSource interface {
	XML(ctx context.Context) ([]byte, error)
}

// SEOHandler serves sitemap.xml and robots.txt.
type SEOHandler struct {
	sitemap SitemapSource
	robots  string
}

// NewSEOHandler creates a new SEOHandler for the site at siteURL.
func NewSEOHandler(sitemap SitemapSource, siteURL string) *SEOHandler {
	return &SEOHandler{
		sitemap: sitemap,
		robots:  seo.RobotsTxt(siteURL),
	}
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := h.sitemap.XML(r.Context())
	if err != nil {
		slog.Error("building sitemap failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write sitemap response", "error", err)
	}
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(h.robots)); err != nil {
		slog.Error("failed to write robots response", "error", err)
	}
}
