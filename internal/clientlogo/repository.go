package clientlogo

import "context"

// Repository reads the client logo wall. Published and draft logos are both
// returned; the wall shows every client the company has worked with.
type Repository interface {
	List(ctx context.Context) ([]Logo, error)
	ListByIndustry(ctx context.Context, industry string) ([]Logo, error)
	Industries(ctx context.Context) ([]Industry, error)
	Count(ctx context.Context) (int, error)
}
