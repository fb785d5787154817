package team

import (
	"context"
	"fmt"

	"github.com/whitemassif/website/internal/cms"
)

const collection = "team_members"

// CMSRepository implements Repository on top of the CMS items API.
type CMSRepository struct {
	cms cms.Reader
}

// NewRepository creates a new Repository reading from the given CMS.
func NewRepository(r cms.Reader) Repository {
	return &CMSRepository{cms: r}
}

// ListActive returns the active team members ordered by name.
func (r *CMSRepository) ListActive(ctx context.Context) ([]Member, error) {
	q := cms.Query{
		Fields: []string{"*"},
		Filter: cms.Eq("status", "active"),
		Sort:   []string{"name"},
	}

	var members []Member
	if err := r.cms.Items(ctx, collection, q, &members); err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	if members == nil {
		members = []Member{}
	}
	return members, nil
}
