package landing

import (
	"context"
	"fmt"

	"github.com/whitemassif/website/internal/cms"
)

// Collection is the CMS collection holding landing pages.
const Collection = "landing_pages"

// CMSRepository implements Repository on top of the CMS items API.
type CMSRepository struct {
	cms cms.Reader
}

// NewRepository creates a new Repository reading from the given CMS.
func NewRepository(r cms.Reader) Repository {
	return &CMSRepository{cms: r}
}

// ListActive returns the active landing pages ordered by title.
func (r *CMSRepository) ListActive(ctx context.Context) ([]Page, error) {
	q := cms.Query{
		Fields: []string{"*"},
		Filter: cms.Eq("status", "active"),
		Sort:   []string{"title"},
	}

	var pages []Page
	if err := r.cms.Items(ctx, Collection, q, &pages); err != nil {
		return nil, fmt.Errorf("listing landing pages: %w", err)
	}
	if pages == nil {
		pages = []Page{}
	}
	return pages, nil
}

// GetBySlug returns the active landing page with the given slug.
func (r *CMSRepository) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	q := cms.Query{
		Fields: []string{"*"},
		Filter: cms.And(cms.Eq("slug", slug), cms.Eq("status", "active")),
		Limit:  1,
	}

	var pages []Page
	if err := r.cms.Items(ctx, Collection, q, &pages); err != nil {
		return nil, fmt.Errorf("querying landing page: %w", err)
	}
	if len(pages) == 0 {
		return nil, ErrPageNotFound
	}
	return &pages[0], nil
}
