package offering

import (
	"context"
	"fmt"

	"github.com/whitemassif/website/internal/cms"
)

const collection = "services"

var active = cms.Eq("status", "active")

// CMSRepository implements Repository on top of the CMS items API.
type CMSRepository struct {
	cms cms.Reader
}

// NewRepository creates a new Repository reading from the given CMS.
func NewRepository(r cms.Reader) Repository {
	return &CMSRepository{cms: r}
}

// ListActive returns every active service ordered by id.
func (r *CMSRepository) ListActive(ctx context.Context) ([]Service, error) {
	return r.list(ctx, active)
}

// ListByCategory returns the active services of one category ordered by id.
func (r *CMSRepository) ListByCategory(ctx context.Context, category string) ([]Service, error) {
	return r.list(ctx, cms.And(active, cms.Eq("category", category)))
}

// GetBySlug returns the active service with the given slug.
func (r *CMSRepository) GetBySlug(ctx context.Context, slug string) (*Service, error) {
	q := cms.Query{
		Fields: []string{"*"},
		Filter: cms.And(cms.Eq("slug", slug), active),
		Limit:  1,
	}

	var services []Service
	if err := r.cms.Items(ctx, collection, q, &services); err != nil {
		return nil, fmt.Errorf("querying service: %w", err)
	}
	if len(services) == 0 {
		return nil, ErrServiceNotFound
	}
	return &services[0], nil
}

func (r *CMSRepository) list(ctx context.Context, filter cms.Filter) ([]Service, error) {
	q := cms.Query{
		Fields: []string{"*"},
		Filter: filter,
		Sort:   []string{"id"},
	}

	var services []Service
	if err := r.cms.Items(ctx, collection, q, &services); err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}
	if services == nil {
		services = []Service{}
	}
	return services, nil
}

// Related returns up to n services other than current, preferring the same category.
func Related(all []Service, current Service, n int) []Service {
	related := make([]Service, 0, n)
	for _, s := range all {
		if len(related) == n {
			return related
		}
		if s.ID != current.ID && s.Category == current.Category {
			related = append(related, s)
		}
	}
	for _, s := range all {
		if len(related) == n {
			break
		}
		if s.ID != current.ID && s.Category != current.Category {
			related = append(related, s)
		}
	}
	return related
}
