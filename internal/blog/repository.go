package blog

import (
	"context"
	"errors"
)

// ErrPostNotFound is returned when no published post matches a slug.
var ErrPostNotFound = errors.New("post not found")

// DefaultLimit is the number of posts ListPublished returns when no limit is given.
const DefaultLimit = 10

// Repository reads published blog posts.
type Repository interface {
	ListPublished(ctx context.Context, limit int) ([]Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
}
