package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/whitemassif/website/internal/cms"
)

// Store is the part of the CMS client a Service writes through.
type Store interface {
	Items(ctx context.Context, collection string, q cms.Query, dst any) error
	CreateItem(ctx context.Context, collection string, item any) (any, error)
}

// Result describes a stored submission.
type Result struct {
	Type       Type
	Collection string
	ID         any
}

// Service validates submissions and forwards them to the CMS.
type Service struct {
	store       Store
	strictDedup bool
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithStrictDedup makes a failed newsletter duplicate check reject the
// submission instead of letting it through.
func WithStrictDedup(strict bool) ServiceOption {
	return func(s *Service) {
		s.strictDedup = strict
	}
}

// NewService creates a Service writing to store.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseType reads and checks the formType discriminator of body.
func ParseType(body Fields) (Type, error) {
	raw, ok := body["formType"]
	if !ok || !present(raw) {
		return "", ErrMissingFormType
	}
	s, ok := raw.(string)
	if !ok {
		return "", ErrInvalidFormType
	}
	t := Type(s)
	if _, ok := Rules[t]; !ok {
		return "", ErrInvalidFormType
	}
	return t, nil
}

// Submit validates body, applies the newsletter duplicate check and writes
// one record to the CMS collection selected by body's formType.
func (s *Service) Submit(ctx context.Context, body Fields, meta Metadata) (*Result, error) {
	t, err := ParseType(body)
	if err != nil {
		return nil, err
	}
	rule := Rules[t]
	fields := body.Without("formType")

	if err := Validate(rule, fields); err != nil {
		return nil, err
	}

	if rule.Dedupe {
		if err := s.checkDuplicate(ctx, rule.Collection, fields.String("email")); err != nil {
			return nil, err
		}
	}

	id, err := s.store.CreateItem(ctx, rule.Collection, rule.Build(t, fields, meta))
	if err != nil {
		return nil, fmt.Errorf("%w: creating %s item: %w", ErrStore, rule.Collection, err)
	}

	return &Result{Type: t, Collection: rule.Collection, ID: id}, nil
}

func (s *Service) checkDuplicate(ctx context.Context, collection, email string) error {
	q := cms.Query{
		Fields: []string{"id"},
		Filter: cms.Eq("email", email),
		Limit:  1,
	}

	var existing []map[string]any
	if err := s.store.Items(ctx, collection, q, &existing); err != nil {
		if s.strictDedup {
			return fmt.Errorf("%w: checking existing subscription: %w", ErrStore, err)
		}
		slog.Warn("newsletter duplicate check failed, continuing", "error", err)
		return nil
	}
	if len(existing) > 0 {
		return ErrAlreadySubscribed
	}
	return nil
}
