package portfolio

import (
	"context"
	"fmt"

	"github.com/whitemassif/website/internal/cms"
)

const collection = "portfolio_projects"

// CMSRepository implements Repository on top of the CMS items API.
type CMSRepository struct {
	cms cms.Reader
}

// NewRepository creates a new Repository reading from the given CMS.
func NewRepository(r cms.Reader) Repository {
	return &CMSRepository{cms: r}
}

// ListPublished returns the published projects in display order, with the
// category, featured image and gallery files expanded.
func (r *CMSRepository) ListPublished(ctx context.Context) ([]Project, error) {
	q := cms.Query{
		Fields: []string{"*", "category.*", "featured_image.*", "gallery.directus_files_id.*"},
		Filter: cms.Eq("status", "published"),
		Sort:   []string{"sort_order"},
	}

	var projects []Project
	if err := r.cms.Items(ctx, collection, q, &projects); err != nil {
		return nil, fmt.Errorf("listing portfolio projects: %w", err)
	}
	if projects == nil {
		projects = []Project{}
	}
	return projects, nil
}
