package migrate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/whitemassif/website/internal/cms"
)

// ExpectedField is a field the site depends on.
type ExpectedField struct {
	Field    string
	Type     string
	Required bool
}

// ExpectedFields lists, per content collection, the fields the site reads.
var ExpectedFields = map[string][]ExpectedField{
	CollectionBlog: {
		{"id", "integer", true},
		{"title", "string", true},
		{"slug", "string", true},
		{"content", "text", false},
		{"excerpt", "text", false},
		{"featured_image", "uuid", false},
		{"published_date", "timestamp", false},
		{"status", "string", false},
		{"category", "string", false},
		{"tags", "json", false},
		{"author", "string", false},
		{"read_time", "string", false},
	},
	CollectionServices: {
		{"id", "integer", true},
		{"title", "string", true},
		{"slug", "string", true},
		{"content", "text", false},
		{"description", "text", false},
		{"featured_image", "uuid", false},
		{"category", "string", false},
		{"status", "string", false},
		{"sort_order", "integer", false},
	},
	CollectionTeam: {
		{"id", "integer", true},
		{"name", "string", true},
		{"position", "string", false},
		{"bio", "text", false},
		{"image", "uuid", false},
		{"email", "string", false},
		{"linkedin", "string", false},
		{"status", "string", false},
	},
	CollectionLanding: {
		{"id", "integer", true},
		{"title", "string", true},
		{"slug", "string", true},
		{"content", "text", false},
		{"meta_title", "string", false},
		{"meta_description", "text", false},
		{"status", "string", false},
	},
}

// systemFields are maintained by the CMS and never reported as extra.
var systemFields = map[string]bool{
	"date_created": true,
	"date_updated": true,
	"user_created": true,
	"user_updated": true,
}

const sampleSize = 3

// CollectionCheck is the verification result for one collection.
type CollectionCheck struct {
	Collection    string
	Exists        bool
	MissingFields []string
	ExtraFields   []string
	Issues        []string
	ItemCount     int
	Samples       []map[string]any
}

// OK reports whether the collection exists with every expected field at the
// expected type.
func (c CollectionCheck) OK() bool {
	return c.Exists && len(c.MissingFields) == 0 && len(c.Issues) == 0
}

// Verify checks each content collection against ExpectedFields, counts its
// items and fetches a few samples.
func (m *Migrator) Verify(ctx context.Context) []CollectionCheck {
	names := make([]string, 0, len(ExpectedFields))
	for name := range ExpectedFields {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make([]CollectionCheck, 0, len(names))
	for _, name := range names {
		checks = append(checks, m.verifyCollection(ctx, name, ExpectedFields[name]))
	}
	return checks
}

func (m *Migrator) verifyCollection(ctx context.Context, name string, expected []ExpectedField) CollectionCheck {
	check := CollectionCheck{Collection: name}

	if _, err := m.cms.Collection(ctx, name); err != nil {
		if !cms.IsNotFound(err) {
			check.Issues = append(check.Issues, fmt.Sprintf("checking collection: %v", err))
		}
		slog.Warn("verify: collection unavailable", "collection", name, "error", err)
		return check
	}
	check.Exists = true

	actual, err := m.cms.Fields(ctx, name)
	if err != nil {
		check.Issues = append(check.Issues, fmt.Sprintf("listing fields: %v", err))
		return check
	}
	check.MissingFields, check.ExtraFields, check.Issues = CompareFields(expected, actual)

	if n, err := m.cms.Count(ctx, name, nil); err != nil {
		check.Issues = append(check.Issues, fmt.Sprintf("counting items: %v", err))
	} else {
		check.ItemCount = n
	}

	var samples []map[string]any
	if err := m.cms.Items(ctx, name, cms.Query{Limit: sampleSize}, &samples); err != nil {
		check.Issues = append(check.Issues, fmt.Sprintf("fetching samples: %v", err))
	} else {
		check.Samples = samples
	}
	return check
}

// CompareFields diffs actual field definitions against expected ones.
func CompareFields(expected []ExpectedField, actual []cms.Field) (missing, extra, issues []string) {
	byName := make(map[string]cms.Field, len(actual))
	for _, f := range actual {
		byName[f.Field] = f
	}

	known := make(map[string]bool, len(expected))
	for _, e := range expected {
		known[e.Field] = true
		f, ok := byName[e.Field]
		if !ok {
			missing = append(missing, e.Field)
			continue
		}
		if f.Type != e.Type {
			issues = append(issues, fmt.Sprintf("field %q has type %q but expected %q", e.Field, f.Type, e.Type))
		}
	}

	for _, f := range actual {
		if !known[f.Field] && !systemFields[f.Field] {
			extra = append(extra, f.Field)
		}
	}
	return missing, extra, issues
}
