package migrate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/whitemassif/website/internal/slug"
	"github.com/whitemassif/website/internal/team"
)

// Fixture locations relative to the data directory.
const (
	postsDir     = "posts"
	servicesFile = "pages/service-test.json"
	teamFile     = "pages/our-team-corporate-events.json"
	indexFile    = "index.json"
)

const defaultAuthor = "White Massif Team"

type theme struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     string   `json:"details"`
	Highlights  []string `json:"highlights"`
}

type postContent struct {
	Intro          string  `json:"intro"`
	SeasonalThemes []theme `json:"seasonal_themes"`
	Themes         []theme `json:"themes"`
}

type postFile struct {
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Excerpt       string       `json:"excerpt"`
	Status        string       `json:"status"`
	Category      string       `json:"category"`
	Tags          []string     `json:"tags"`
	FeaturedImage string       `json:"featured_image"`
	DateCreated   string       `json:"date_created"`
	Content       *postContent `json:"content"`
}

// Options controls a full content migration.
type Options struct {
	DataDir string
	// Reset deletes existing rows of each target collection first.
	Reset bool
}

// Migrate checks connectivity, then migrates blog posts, services, team
// members and the sample landing pages in that order.
func (m *Migrator) Migrate(ctx context.Context, opts Options) ([]*Report, error) {
	if err := m.CheckConnection(ctx); err != nil {
		return nil, err
	}

	steps := []struct {
		collection string
		run        func(ctx context.Context, r *Report)
		name       string
	}{
		{CollectionBlog, func(ctx context.Context, r *Report) { m.migratePosts(ctx, opts.DataDir, r) }, "posts"},
		{CollectionServices, func(ctx context.Context, r *Report) { m.migrateServices(ctx, opts.DataDir, r) }, "services"},
		{CollectionTeam, func(ctx context.Context, r *Report) { m.migrateTeam(ctx, opts.DataDir, r) }, "team"},
		{CollectionLanding, m.migrateLandingPages, "landing pages"},
	}

	reports := make([]*Report, 0, len(steps))
	for _, step := range steps {
		if ctx.Err() != nil {
			return reports, ctx.Err()
		}
		r := &Report{Name: step.name}
		if opts.Reset {
			if err := m.clear(ctx, step.collection, r); err != nil {
				r.fail(step.collection, err)
				reports = append(reports, r)
				continue
			}
		}
		step.run(ctx, r)
		reports = append(reports, r)
	}
	return reports, nil
}

func (m *Migrator) migratePosts(ctx context.Context, dataDir string, r *Report) {
	files, err := filepath.Glob(filepath.Join(dataDir, postsDir, "*.json"))
	if err != nil {
		r.fail(postsDir, err)
		return
	}
	sort.Strings(files)

	for _, path := range files {
		name := filepath.Base(path)
		var pf postFile
		if err := readJSON(path, &pf); err != nil {
			r.fail(name, err)
			continue
		}
		posts, err := m.postsFromFile(pf)
		if err != nil {
			r.fail(name, err)
			continue
		}
		if len(posts) == 0 {
			r.Skipped++
			slog.Warn("posts: no usable content structure", "file", name)
			continue
		}
		for _, p := range posts {
			m.create(ctx, CollectionBlog, p["title"].(string), p, r)
		}
	}
}

// postsFromFile expands a post fixture into blog items. Fixtures listing
// themes produce one post per theme; other fixtures produce a single post.
func (m *Migrator) postsFromFile(pf postFile) ([]map[string]any, error) {
	if pf.Content == nil {
		return nil, nil
	}

	published := pf.DateCreated
	if published == "" {
		published = m.now().UTC().Format(time.RFC3339)
	}

	themed := func(themes []theme, category string, tags []string, readTime string) ([]map[string]any, error) {
		out := make([]map[string]any, 0, len(themes))
		for _, t := range themes {
			var d doc
			d.heading(2, t.Title)
			d.para(t.Description)
			if t.Details != "" {
				d.heading(3, "Details")
				d.para(t.Details)
			}
			if len(t.Highlights) > 0 {
				d.heading(3, "Highlights")
				d.list(t.Highlights)
			}
			body, err := d.html()
			if err != nil {
				return nil, fmt.Errorf("theme %q: %w", t.Title, err)
			}
			out = append(out, map[string]any{
				"title":          t.Title,
				"slug":           slug.Generate(t.Title),
				"excerpt":        t.Description,
				"content":        body,
				"status":         "published",
				"featured_image": nilIfEmpty(pf.FeaturedImage),
				"published_date": published,
				"category":       orDefault(pf.Category, category),
				"tags":           tagsOr(pf.Tags, tags...),
				"author":         defaultAuthor,
				"read_time":      readTime,
			})
		}
		return out, nil
	}

	switch {
	case len(pf.Content.SeasonalThemes) > 0:
		return themed(pf.Content.SeasonalThemes, "Seasonal Events", []string{"events", "seasonal"}, "5 min read")
	case len(pf.Content.Themes) > 0:
		return themed(pf.Content.Themes, "Event Themes", []string{"events", "corporate"}, "4 min read")
	}

	if pf.Title == "" {
		return nil, errors.New("post has neither themes nor a title")
	}
	var d doc
	d.heading(2, pf.Title)
	d.para(pf.Excerpt)
	d.para(pf.Content.Intro)
	body, err := d.html()
	if err != nil {
		return nil, err
	}
	postSlug := pf.Slug
	if postSlug == "" {
		postSlug = slug.Generate(pf.Title)
	}
	return []map[string]any{{
		"title":          pf.Title,
		"slug":           postSlug,
		"excerpt":        pf.Excerpt,
		"content":        body,
		"status":         orDefault(pf.Status, "published"),
		"featured_image": nilIfEmpty(pf.FeaturedImage),
		"published_date": published,
		"category":       orDefault(pf.Category, "Corporate Events"),
		"tags":           tagsOr(pf.Tags, "events"),
		"author":         defaultAuthor,
		"read_time":      "6 min read",
	}}, nil
}

type serviceEntry struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	DetailedDescription string `json:"detailed_description"`
}

type servicesFixture struct {
	Content struct {
		Services         []serviceEntry `json:"services"`
		EndToEndServices []serviceEntry `json:"end_to_end_services"`
	} `json:"content"`
}

type feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var (
	mainServiceFeatures = []feature{
		{"Expert Planning", "Professional event planning with attention to every detail"},
		{"Custom Solutions", "Tailored services to meet your specific requirements"},
		{"End-to-End Management", "Complete service from concept to execution"},
	}
	endToEndFeatures = []feature{
		{"Comprehensive Service", "Complete end-to-end solution for your event needs"},
		{"Professional Team", "Experienced professionals handling every aspect"},
	}
)

func (m *Migrator) migrateServices(ctx context.Context, dataDir string, r *Report) {
	var fx servicesFixture
	if ok := readOptional(filepath.Join(dataDir, servicesFile), &fx, r); !ok {
		return
	}

	groups := []struct {
		entries  []serviceEntry
		category string
		features []feature
		stats    map[string]string
	}{
		{fx.Content.Services, "Main Services", mainServiceFeatures, map[string]string{"events": "150+", "satisfaction": "99%", "clients": "80+"}},
		{fx.Content.EndToEndServices, "End-to-End Services", endToEndFeatures, map[string]string{"events": "200+", "satisfaction": "98%", "clients": "75+"}},
	}

	for _, g := range groups {
		for _, s := range g.entries {
			var d doc
			d.heading(2, s.Title)
			d.para(s.Description)
			if s.DetailedDescription != "" {
				d.heading(3, "Detailed Overview")
				d.para(s.DetailedDescription)
			}
			body, err := d.html()
			if err != nil {
				r.fail(s.Title, err)
				continue
			}
			m.create(ctx, CollectionServices, s.Title, map[string]any{
				"title":          s.Title,
				"slug":           slug.Generate(s.Title),
				"description":    s.Description,
				"content":        body,
				"category":       g.category,
				"status":         "active",
				"featured_image": nil,
				"features":       g.features,
				"stats":          g.stats,
			}, r)
		}
	}
}

type teamFixture struct {
	Content struct {
		TeamMembers []struct {
			Name     string `json:"name"`
			Position string `json:"position"`
		} `json:"team_members"`
	} `json:"content"`
}

func (m *Migrator) migrateTeam(ctx context.Context, dataDir string, r *Report) {
	var fx teamFixture
	if ok := readOptional(filepath.Join(dataDir, teamFile), &fx, r); !ok {
		return
	}

	for _, member := range fx.Content.TeamMembers {
		if member.Name == "" {
			r.fail("(unnamed)", errors.New("team member has no name"))
			continue
		}
		department := team.InferDepartment(member.Position)
		m.create(ctx, CollectionTeam, member.Name, map[string]any{
			"name":       member.Name,
			"position":   member.Position,
			"department": department,
			"bio":        teamBio(member.Name, member.Position, department),
			"status":     "active",
			"email":      nil,
			"linkedin":   nil,
		}, r)
	}
}

func teamBio(name, position, department string) string {
	return fmt.Sprintf("%s is a dedicated professional at White Massif, bringing expertise and passion to the %s team. With their specialized skills in %s, they contribute significantly to our success in delivering exceptional corporate events.",
		name, department, strings.ToLower(position))
}

// readOptional decodes a fixture that may be absent. A missing file is logged
// and skipped; an unreadable one is recorded as a failure.
func readOptional(path string, dst any, r *Report) bool {
	err := readJSON(path, dst)
	switch {
	case err == nil:
		return true
	case errors.Is(err, fs.ErrNotExist):
		slog.Warn(r.Name+": fixture not found", "path", path)
	default:
		r.fail(filepath.Base(path), err)
	}
	return false
}

func readJSON(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
