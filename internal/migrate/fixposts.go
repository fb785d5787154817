package migrate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/whitemassif/website/internal/slug"
)

type indexEntry struct {
	Title       string   `json:"title"`
	FilePath    string   `json:"file_path"`
	Description string   `json:"description"`
	DateCreated string   `json:"date_created"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type postIndex struct {
	Posts []indexEntry `json:"posts"`
}

// FixPosts replaces every blog row with the posts listed in the data
// directory's index, rendering each post's themes into a single body.
func (m *Migrator) FixPosts(ctx context.Context, dataDir string) (*Report, error) {
	r := &Report{Name: "fix posts"}

	var idx postIndex
	if err := readJSON(filepath.Join(dataDir, indexFile), &idx); err != nil {
		return r, fmt.Errorf("reading post index: %w", err)
	}

	if err := m.clear(ctx, CollectionBlog, r); err != nil {
		return r, err
	}

	for _, entry := range idx.Posts {
		var pf postFile
		if err := readJSON(resolveFixture(dataDir, entry.FilePath), &pf); err != nil {
			r.fail(entry.Title, err)
			continue
		}
		body, err := indexedPostHTML(pf)
		if err != nil {
			r.fail(entry.Title, err)
			continue
		}
		tags := entry.Tags
		if tags == nil {
			tags = []string{}
		}
		m.create(ctx, CollectionBlog, entry.Title, map[string]any{
			"title":          entry.Title,
			"slug":           slug.Generate(entry.Title),
			"content":        body,
			"excerpt":        orDefault(pf.Excerpt, entry.Description),
			"status":         "published",
			"published_date": nilIfEmpty(entry.DateCreated),
			"category":       entry.Category,
			"tags":           tags,
			"author":         defaultAuthor,
			"read_time":      "5 min read",
			"featured_image": nil,
		}, r)
	}
	return r, nil
}

func indexedPostHTML(pf postFile) (string, error) {
	var d doc
	if pf.Content != nil {
		d.para(pf.Content.Intro)
		if len(pf.Content.Themes) > 0 {
			d.heading(2, "Event Themes")
			for _, t := range pf.Content.Themes {
				d.heading(3, t.Title)
				d.para(t.Description)
				d.para(t.Details)
				if len(t.Highlights) > 0 {
					d.heading(4, "Key Highlights:")
					d.list(t.Highlights)
				}
			}
		}
	}
	return d.html()
}

// resolveFixture locates an index file path, which may be relative to the
// data directory or to its parent.
func resolveFixture(dataDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	candidates := []string{filepath.Join(dataDir, p), filepath.Join(filepath.Dir(dataDir), p)}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil || !errors.Is(err, fs.ErrNotExist) {
			return c
		}
	}
	return candidates[0]
}
