package team

import "context"

// Repository reads the active team roster.
type Repository interface {
	ListActive(ctx context.Context) ([]Member, error)
}
