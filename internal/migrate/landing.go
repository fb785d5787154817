package migrate

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"sigs.k8s.io/yaml"

	"github.com/whitemassif/website/internal/cms"
	"github.com/whitemassif/website/internal/seo"
)

//go:embed fixtures/landing_pages.yaml
var landingFixtures []byte

// SampleLandingPages returns the embedded landing page fixtures with their
// markdown content rendered to HTML.
func SampleLandingPages() ([]map[string]any, error) {
	var pages []map[string]any
	if err := yaml.Unmarshal(landingFixtures, &pages); err != nil {
		return nil, fmt.Errorf("parsing landing page fixtures: %w", err)
	}
	for _, p := range pages {
		if src, ok := p["content"].(string); ok {
			body, err := toHTML(src)
			if err != nil {
				return nil, fmt.Errorf("landing page %v: %w", p["slug"], err)
			}
			p["content"] = body
		}
	}
	return pages, nil
}

func (m *Migrator) migrateLandingPages(ctx context.Context, r *Report) {
	pages, err := SampleLandingPages()
	if err != nil {
		r.fail("fixtures", err)
		return
	}
	for _, p := range pages {
		title, _ := p["title"].(string)
		m.create(ctx, CollectionLanding, title, p, r)
	}
}

type landingRow struct {
	ID      any    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Slug    string `json:"slug"`
}

// PopulateLandingMeta sets meta_title and meta_description on every landing
// page, derived from its title and content.
func (m *Migrator) PopulateLandingMeta(ctx context.Context) (*Report, error) {
	r := &Report{Name: "landing meta"}

	var rows []landingRow
	q := cms.Query{Fields: []string{"id", "title", "content", "slug"}, Limit: -1}
	if err := m.cms.Items(ctx, CollectionLanding, q, &rows); err != nil {
		return r, fmt.Errorf("listing landing pages: %w", err)
	}
	slog.Info("landing meta: found landing pages", "count", len(rows))

	for _, row := range rows {
		patch := map[string]string{
			"meta_title":       seo.MetaTitle(row.Title),
			"meta_description": seo.MetaDescription(row.Content, row.Title),
		}
		if err := m.cms.UpdateItem(ctx, CollectionLanding, row.ID, patch); err != nil {
			r.fail(row.Title, fmt.Errorf("updating meta: %w", err))
			continue
		}
		r.Updated++
		slog.Info("landing meta: updated", "page", row.Title, "meta_title", patch["meta_title"])
	}
	return r, nil
}
