package clientlogo

import (
	"context"
	"fmt"

	"github.com/whitemassif/website/internal/cms"
)

const collection = "client_logos"

var logoFields = []string{"id", "client_name", "Category", "client_logo", "status", "sort"}

// CMSRepository implements Repository on top of the CMS items API.
type CMSRepository struct {
	cms cms.Reader
}

// NewRepository creates a new Repository reading from the given CMS.
func NewRepository(r cms.Reader) Repository {
	return &CMSRepository{cms: r}
}

// List returns every client logo in wall order.
func (r *CMSRepository) List(ctx context.Context) ([]Logo, error) {
	return r.list(ctx, nil)
}

// ListByIndustry returns the logos of one category.
func (r *CMSRepository) ListByIndustry(ctx context.Context, industry string) ([]Logo, error) {
	return r.list(ctx, cms.Eq("Category", industry))
}

// Industries returns each category with its client count, ordered by category.
func (r *CMSRepository) Industries(ctx context.Context) ([]Industry, error) {
	q := cms.Query{
		Aggregate: map[string]string{"count": "Category"},
		GroupBy:   []string{"Category"},
		Sort:      []string{"Category"},
	}

	var rows []map[string]any
	if err := r.cms.Items(ctx, collection, q, &rows); err != nil {
		return nil, fmt.Errorf("aggregating client categories: %w", err)
	}

	industries := make([]Industry, 0, len(rows))
	for _, row := range rows {
		category, _ := row["Category"].(string)
		n, err := cms.AggregateInt(row["count"])
		if err != nil {
			return nil, fmt.Errorf("parsing count for %q: %w", category, err)
		}
		industries = append(industries, Industry{Category: category, Count: n})
	}
	return industries, nil
}

// Count returns the total number of client logos.
func (r *CMSRepository) Count(ctx context.Context) (int, error) {
	q := cms.Query{Aggregate: map[string]string{"count": "id"}}

	var rows []map[string]any
	if err := r.cms.Items(ctx, collection, q, &rows); err != nil {
		return 0, fmt.Errorf("counting client logos: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return cms.AggregateInt(rows[0]["count"])
}

func (r *CMSRepository) list(ctx context.Context, filter cms.Filter) ([]Logo, error) {
	q := cms.Query{
		Fields: logoFields,
		Filter: filter,
		Sort:   []string{"sort"},
	}

	var logos []Logo
	if err := r.cms.Items(ctx, collection, q, &logos); err != nil {
		return nil, fmt.Errorf("listing client logos: %w", err)
	}
	if logos == nil {
		logos = []Logo{}
	}
	return logos, nil
}
