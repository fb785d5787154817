package migrate

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"

	"sigs.k8s.io/yaml"

	"github.com/whitemassif/website/internal/cms"
)

//go:embed schemas/*.yaml
var schemaFS embed.FS

// FieldSet lists fields to add to one collection.
type FieldSet struct {
	Collection string      `json:"collection"`
	Fields     []cms.Field `json:"fields"`
}

// Schema declares collections and fields to provision.
type Schema struct {
	Collections []cms.Collection `json:"collections"`
	Fields      []FieldSet       `json:"fields"`
}

// LoadSchemas parses the embedded schema definitions in file name order.
func LoadSchemas() ([]Schema, error) {
	return loadSchemas(schemaFS, "schemas")
}

func loadSchemas(fsys fs.FS, dir string) ([]Schema, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading schema dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".yaml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	schemas := make([]Schema, 0, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", name, err)
		}
		var s Schema
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("parsing schema %s: %w", name, err)
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// Provision creates the declared collections and fields. Definitions the CMS
// reports as already existing are counted as skipped.
func (m *Migrator) Provision(ctx context.Context, schemas []Schema) *Report {
	r := &Report{Name: "provision"}

	for _, s := range schemas {
		for _, col := range s.Collections {
			if col.Meta == nil {
				col.Meta = map[string]any{}
			}
			col.Meta["collection"] = col.Collection
			err := m.cms.CreateCollection(ctx, col)
			switch {
			case err == nil:
				r.Created++
				slog.Info("provision: created collection", "collection", col.Collection)
			case cms.IsAlreadyExists(err):
				r.Skipped++
				slog.Info("provision: collection already exists", "collection", col.Collection)
			default:
				r.fail(col.Collection, fmt.Errorf("creating collection: %w", err))
			}
		}

		for _, set := range s.Fields {
			for _, f := range set.Fields {
				f.Collection = set.Collection
				name := set.Collection + "." + f.Field
				err := m.cms.CreateField(ctx, set.Collection, f)
				switch {
				case err == nil:
					r.Created++
					slog.Info("provision: added field", "field", name)
				case cms.IsAlreadyExists(err):
					r.Skipped++
					slog.Info("provision: field already exists", "field", name)
				default:
					r.fail(name, fmt.Errorf("creating field: %w", err))
				}
			}
		}
	}
	return r
}
