package migrate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/whitemassif/website/internal/cms"
	"github.com/whitemassif/website/internal/form"
)

// Item is one CMS row as loosely typed JSON.
type Item map[string]any

// Str returns the field as a string; non-string values are formatted and nil
// is "".
func (it Item) Str(key string) string {
	switch v := it[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Check inspects every item of a collection and returns the problems found.
type Check struct {
	Name string
	Run  func(items []Item) []string
}

const minContentLength = 100

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// IntegrityChecks are the data checks run per content collection.
var IntegrityChecks = map[string][]Check{
	CollectionBlog: {
		{"Required fields populated", requireFields("Blog post", "title", "slug", "content")},
		{"Unique slugs", uniqueSlugs("blog")},
		{"Valid published dates", func(items []Item) []string {
			var issues []string
			for _, it := range items {
				d := it.Str("published_date")
				if d != "" && !validDate(d) {
					issues = append(issues, fmt.Sprintf("Blog post %s has invalid published_date: %s", it.Str("id"), d))
				}
			}
			return issues
		}},
		{"Content quality", func(items []Item) []string {
			var issues []string
			for _, it := range items {
				c := it.Str("content")
				if c != "" && len(c) < minContentLength {
					issues = append(issues, fmt.Sprintf("Blog post %s has very short content (%d chars)", it.Str("id"), len(c)))
				}
			}
			return issues
		}},
	},
	CollectionServices: {
		{"Required fields populated", requireFields("Service", "title", "slug")},
		{"Unique slugs", uniqueSlugs("service")},
		{"Active status", requireActive("No active services found")},
	},
	CollectionTeam: {
		{"Required fields populated", requireFields("Team member", "name")},
		{"Email format", func(items []Item) []string {
			var issues []string
			for _, it := range items {
				e := it.Str("email")
				if e != "" && !form.ValidateEmail(e) {
					issues = append(issues, fmt.Sprintf("Team member %s (%s) has invalid email: %s", it.Str("id"), it.Str("name"), e))
				}
			}
			return issues
		}},
		{"Active members", requireActive("No active team members found")},
	},
	CollectionLanding: {
		{"Required fields populated", requireFields("Landing page", "title", "slug")},
		{"Unique slugs", uniqueSlugs("landing page")},
		{"SEO fields populated", requireFields("Landing page", "meta_title", "meta_description")},
	},
}

func requireFields(label string, fields ...string) func([]Item) []string {
	return func(items []Item) []string {
		var issues []string
		for _, it := range items {
			for _, f := range fields {
				if strings.TrimSpace(it.Str(f)) == "" {
					issues = append(issues, fmt.Sprintf("%s %s missing %s", label, it.Str("id"), f))
				}
			}
		}
		return issues
	}
}

func uniqueSlugs(label string) func([]Item) []string {
	return func(items []Item) []string {
		seen := make(map[string]int, len(items))
		var dupes []string
		for _, it := range items {
			s := it.Str("slug")
			if s == "" {
				continue
			}
			seen[s]++
			if seen[s] == 2 {
				dupes = append(dupes, s)
			}
		}
		if len(dupes) == 0 {
			return nil
		}
		return []string{fmt.Sprintf("Duplicate %s slugs found: %s", label, strings.Join(dupes, ", "))}
	}
}

func requireActive(msg string) func([]Item) []string {
	return func(items []Item) []string {
		for _, it := range items {
			if it.Str("status") == "active" {
				return nil
			}
		}
		return []string{msg}
	}
}

func validDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// IntegrityResult is the outcome of the checks on one collection.
type IntegrityResult struct {
	Collection string
	ItemCount  int
	ChecksRun  int
	Issues     []string
}

// RunChecks applies checks to items.
func RunChecks(collection string, items []Item, checks []Check) IntegrityResult {
	res := IntegrityResult{Collection: collection, ItemCount: len(items)}
	for _, c := range checks {
		res.ChecksRun++
		res.Issues = append(res.Issues, c.Run(items)...)
	}
	return res
}

// Integrity loads every item of each content collection and runs its checks.
func (m *Migrator) Integrity(ctx context.Context) []IntegrityResult {
	names := make([]string, 0, len(IntegrityChecks))
	for name := range IntegrityChecks {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]IntegrityResult, 0, len(names))
	for _, name := range names {
		var items []Item
		if err := m.cms.Items(ctx, name, cms.Query{Limit: -1}, &items); err != nil {
			slog.Error("integrity: failed to load items", "collection", name, "error", err)
			results = append(results, IntegrityResult{
				Collection: name,
				Issues:     []string{fmt.Sprintf("Error loading collection: %v", err)},
			})
			continue
		}
		results = append(results, RunChecks(name, items, IntegrityChecks[name]))
	}
	return results
}
