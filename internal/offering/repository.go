package offering

import (
	"context"
	"errors"
)

// ErrServiceNotFound is returned when no active service matches a slug.
var ErrServiceNotFound = errors.New("service not found")

// Repository reads the active service offerings.
type Repository interface {
	ListActive(ctx context.Context) ([]Service, error)
	GetBySlug(ctx context.Context, slug string) (*Service, error)
	ListByCategory(ctx context.Context, category string) ([]Service, error)
}
