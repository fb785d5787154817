// Package migrate provisions CMS collections and loads site content into them.
// Every operation runs sequentially, records per-item failures in a Report,
// and carries on with the next item.
package migrate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/whitemassif/website/internal/cms"
)

// CMS is the part of the CMS client the migrations use.
type CMS interface {
	ServerInfo(ctx context.Context) (map[string]any, error)
	Items(ctx context.Context, collection string, q cms.Query, dst any) error
	CreateItem(ctx context.Context, collection string, item any) (any, error)
	UpdateItem(ctx context.Context, collection string, id any, patch any) error
	DeleteItem(ctx context.Context, collection string, id any) error
	Count(ctx context.Context, collection string, filter cms.Filter) (int, error)
	Collection(ctx context.Context, name string) (*cms.Collection, error)
	CreateCollection(ctx context.Context, def cms.Collection) error
	Fields(ctx context.Context, collection string) ([]cms.Field, error)
	CreateField(ctx context.Context, collection string, f cms.Field) error
}

// Content collection names.
const (
	CollectionBlog     = "blog"
	CollectionServices = "services"
	CollectionTeam     = "team_members"
	CollectionLanding  = "landing_pages"
)

// Failure is one item that could not be processed.
type Failure struct {
	Item string
	Err  error
}

// Report tallies the outcome of one migration step.
type Report struct {
	Name     string
	Created  int
	Updated  int
	Deleted  int
	Skipped  int
	Failures []Failure
}

// Failed reports whether any item failed.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}

// Total is the number of items the step touched.
func (r *Report) Total() int {
	return r.Created + r.Updated + r.Deleted + r.Skipped + len(r.Failures)
}

func (r *Report) fail(item string, err error) {
	slog.Error(r.Name+": item failed", "item", item, "error", err)
	r.Failures = append(r.Failures, Failure{Item: item, Err: err})
}

// AnyFailed reports whether any of reports recorded a failure.
func AnyFailed(reports []*Report) bool {
	for _, r := range reports {
		if r.Failed() {
			return true
		}
	}
	return false
}

// Migrator runs migrations against a CMS.
type Migrator struct {
	cms CMS
	now func() time.Time
}

// Option configures a Migrator.
type Option func(*Migrator)

// WithClock replaces the time source used for default publish dates.
func WithClock(now func() time.Time) Option {
	return func(m *Migrator) { m.now = now }
}

// New creates a Migrator.
func New(c CMS, opts ...Option) *Migrator {
	m := &Migrator{cms: c, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CheckConnection verifies the CMS is reachable with the configured token.
func (m *Migrator) CheckConnection(ctx context.Context) error {
	if _, err := m.cms.ServerInfo(ctx); err != nil {
		return fmt.Errorf("checking cms connection: %w", err)
	}
	return nil
}

type idRow struct {
	ID any `json:"id"`
}

// clear deletes every row of collection, recording deletions in r.
func (m *Migrator) clear(ctx context.Context, collection string, r *Report) error {
	var rows []idRow
	q := cms.Query{Fields: []string{"id"}, Limit: -1}
	if err := m.cms.Items(ctx, collection, q, &rows); err != nil {
		return fmt.Errorf("listing %s for reset: %w", collection, err)
	}
	for _, row := range rows {
		if err := m.cms.DeleteItem(ctx, collection, row.ID); err != nil {
			r.fail(fmt.Sprintf("%s/%v", collection, row.ID), fmt.Errorf("deleting: %w", err))
			continue
		}
		r.Deleted++
	}
	slog.Info(r.Name+": cleared collection", "collection", collection, "deleted", r.Deleted)
	return nil
}

func (m *Migrator) create(ctx context.Context, collection, name string, item any, r *Report) {
	if _, err := m.cms.CreateItem(ctx, collection, item); err != nil {
		r.fail(name, fmt.Errorf("creating %s item: %w", collection, err))
		return
	}
	r.Created++
	slog.Info(r.Name+": created", "collection", collection, "item", name)
}
