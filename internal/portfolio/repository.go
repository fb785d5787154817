package portfolio

import "context"

// Repository reads the published portfolio projects.
type Repository interface {
	ListPublished(ctx context.Context) ([]Project, error)
}
