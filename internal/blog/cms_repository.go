package blog

import (
	"context"
	"fmt"

	"github.com/whitemassif/website/internal/cms"
)

const collection = "blog"

var postFields = []string{
	"id", "title", "slug", "content", "featured_image", "published_date",
	"status", "excerpt", "tags", "category", "author", "read_time",
}

// CMSRepository implements Repository on top of the CMS items API.
type CMSRepository struct {
	cms cms.Reader
}

// NewRepository creates a new Repository reading from the given CMS.
func NewRepository(r cms.Reader) Repository {
	return &CMSRepository{cms: r}
}

// ListPublished returns published posts, newest first.
func (r *CMSRepository) ListPublished(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := cms.Query{
		Fields: postFields,
		Filter: cms.Eq("status", "published"),
		Sort:   []string{"-published_date"},
		Limit:  limit,
	}

	var posts []Post
	if err := r.cms.Items(ctx, collection, q, &posts); err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}

// GetBySlug returns the published post with the given slug.
func (r *CMSRepository) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	q := cms.Query{
		Fields: postFields,
		Filter: cms.And(cms.Eq("slug", slug), cms.Eq("status", "published")),
		Limit:  1,
	}

	var posts []Post
	if err := r.cms.Items(ctx, collection, q, &posts); err != nil {
		return nil, fmt.Errorf("querying post: %w", err)
	}
	if len(posts) == 0 {
		return nil, ErrPostNotFound
	}
	return &posts[0], nil
}
