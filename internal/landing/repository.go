package landing

import (
	"context"
	"errors"
)

// ErrPageNotFound is returned when no active landing page matches a slug.
var ErrPageNotFound = errors.New("landing page not found")

// Repository reads active landing pages.
type Repository interface {
	ListActive(ctx context.Context) ([]Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
}
