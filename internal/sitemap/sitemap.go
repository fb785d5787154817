// Package sitemap composes the XML sitemap from static routes and CMS content.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/whitemassif/website/internal/blog"
	"github.com/whitemassif/website/internal/landing"
	"github.com/whitemassif/website/internal/offering"
)

// Change frequencies used by the site.
const (
	Weekly  = "weekly"
	Monthly = "monthly"
)

// PostLimit caps how many blog posts are listed.
const PostLimit = 500

// StaticRoutes are the fixed pages of the site; "" is the home page.
var StaticRoutes = []string{
	"",
	"/about",
	"/services",
	"/portfolio",
	"/work",
	"/team",
	"/clients",
	"/careers",
	"/blog",
	"/contact",
}

// Entry is one <url> of the sitemap.
type Entry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}

// PostSource lists published blog posts.
type PostSource interface {
	ListPublished(ctx context.Context, limit int) ([]blog.Post, error)
}

// ServiceSource lists active services.
type ServiceSource interface {
	ListActive(ctx context.Context) ([]offering.Service, error)
}

// LandingSource lists active landing pages.
type LandingSource interface {
	ListActive(ctx context.Context) ([]landing.Page, error)
}

// Builder assembles sitemap entries.
type Builder struct {
	siteURL  string
	posts    PostSource
	services ServiceSource
	landings LandingSource
	now      func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock replaces the time source used for lastmod values.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// NewBuilder creates a Builder for the site served at siteURL.
func NewBuilder(siteURL string, posts PostSource, services ServiceSource, landings LandingSource, opts ...Option) *Builder {
	b := &Builder{
		siteURL:  strings.TrimRight(siteURL, "/"),
		posts:    posts,
		services: services,
		landings: landings,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns static routes followed by blog, service and landing entries.
// The content sources are queried concurrently. A failing source is logged and
// contributes no entries; the remaining entries are still returned together
// with the first source error.
func (b *Builder) Build(ctx context.Context) ([]Entry, error) {
	now := b.now()

	entries := make([]Entry, 0, len(StaticRoutes))
	for _, route := range StaticRoutes {
		priority := 0.8
		if route == "" {
			priority = 1.0
		}
		entries = append(entries, Entry{
			URL:             b.siteURL + route,
			LastModified:    now,
			ChangeFrequency: Weekly,
			Priority:        priority,
		})
	}

	var postEntries, serviceEntries, landingEntries []Entry
	var g errgroup.Group

	g.Go(func() error {
		posts, err := b.posts.ListPublished(ctx, PostLimit)
		if err != nil {
			slog.Error("sitemap: failed to list blog posts", "error", err)
			return fmt.Errorf("list blog posts: %w", err)
		}
		for _, p := range posts {
			lastmod := p.PublishedAt()
			if lastmod.IsZero() {
				lastmod = now
			}
			postEntries = append(postEntries, Entry{
				URL:             b.siteURL + "/blog/" + p.Slug,
				LastModified:    lastmod,
				ChangeFrequency: Monthly,
				Priority:        0.6,
			})
		}
		return nil
	})

	g.Go(func() error {
		services, err := b.services.ListActive(ctx)
		if err != nil {
			slog.Error("sitemap: failed to list services", "error", err)
			return fmt.Errorf("list services: %w", err)
		}
		for _, s := range services {
			serviceEntries = append(serviceEntries, Entry{
				URL:             b.siteURL + "/services/" + s.Slug,
				LastModified:    now,
				ChangeFrequency: Monthly,
				Priority:        0.7,
			})
		}
		return nil
	})

	g.Go(func() error {
		pages, err := b.landings.ListActive(ctx)
		if err != nil {
			slog.Error("sitemap: failed to list landing pages", "error", err)
			return fmt.Errorf("list landing pages: %w", err)
		}
		for _, p := range pages {
			landingEntries = append(landingEntries, Entry{
				URL:             b.siteURL + "/landing/" + p.Slug,
				LastModified:    now,
				ChangeFrequency: Weekly,
				Priority:        0.7,
			})
		}
		return nil
	})

	err := g.Wait()

	entries = append(entries, postEntries...)
	entries = append(entries, serviceEntries...)
	return append(entries, landingEntries...), err
}

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Encode writes entries as a sitemaps.org urlset document.
func Encode(w io.Writer, entries []Entry) error {
	set := urlSet{Xmlns: xmlns, URLs: make([]xmlURL, 0, len(entries))}
	for _, e := range entries {
		u := xmlURL{Loc: e.URL, ChangeFreq: e.ChangeFrequency}
		if !e.LastModified.IsZero() {
			u.LastMod = e.LastModified.UTC().Format(time.RFC3339)
		}
		if e.Priority > 0 {
			u.Priority = strconv.FormatFloat(e.Priority, 'f', 1, 64)
		}
		set.URLs = append(set.URLs, u)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing xml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encoding sitemap: %w", err)
	}
	return enc.Close()
}
