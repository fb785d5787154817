package auth

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMalformedHash is returned for configured key hashes that are not bcrypt hashes.
var ErrMalformedHash = errors.New("operator key hash is not a bcrypt hash")

// OperatorRepository lists the operators allowed to call the operator API.
type OperatorRepository interface {
	List(ctx context.Context) ([]Operator, error)
}

// StaticRepository serves a fixed set of operators, typically from OPERATOR_KEYS.
type StaticRepository struct {
	operators []Operator
}

// NewStaticRepository builds a repository from name to bcrypt hash pairs.
// Operators are kept sorted by name.
func NewStaticRepository(keys map[string]string) (*StaticRepository, error) {
	ops := make([]Operator, 0, len(keys))
	for name, hash := range keys {
		hash = strings.TrimSpace(hash)
		if !strings.HasPrefix(hash, "$2") {
			return nil, fmt.Errorf("operator %q: %w", name, ErrMalformedHash)
		}
		ops = append(ops, Operator{Name: strings.TrimSpace(name), KeyHash: hash})
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return &StaticRepository{operators: ops}, nil
}

// List returns a copy of the configured operators.
func (r *StaticRepository) List(_ context.Context) ([]Operator, error) {
	out := make([]Operator, len(r.operators))
	copy(out, r.operators)
	return out, nil
}
