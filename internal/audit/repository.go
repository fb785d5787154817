// Package audit keeps a local log of handled form submissions.
package audit

import (
	"context"
	"log/slog"
)

// DefaultListLimit is used when ListRecent is called without a positive limit.
const DefaultListLimit = 50

// MaxListLimit caps ListRecent.
const MaxListLimit = 500

// Repository stores and lists submission events.
type Repository interface {
	Record(ctx context.Context, e *Event) error
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}

// Recorder writes events without letting storage failures escape.
type Recorder struct {
	repo Repository
}

// NewRecorder creates a Recorder over repo.
func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Record stores e. Failures are logged and dropped.
func (r *Recorder) Record(ctx context.Context, e Event) {
	if err := r.repo.Record(ctx, &e); err != nil {
		slog.Warn("recording submission event failed",
			"error", err,
			"requestId", e.RequestID,
			"formType", e.FormType,
		)
	}
}

// NopRepository discards events. It is used when no database is configured.
type NopRepository struct{}

// Record does nothing.
func (NopRepository) Record(context.Context, *Event) error { return nil }

// ListRecent always returns an empty list.
func (NopRepository) ListRecent(context.Context, int) ([]Event, error) { return []Event{}, nil }

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}
