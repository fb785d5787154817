// Package cmstest provides an in-memory cms.Reader for repository tests.
package cmstest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/whitemassif/website/internal/cms"
)

// Call records one Items invocation.
type Call struct {
	Collection string
	Query      cms.Query
}

// Reader serves canned rows per collection and records every call.
type Reader struct {
	Rows  map[string]any
	Err   error
	Calls []Call
}

// Items encodes the canned rows for collection and decodes them into dst,
// so dst sees exactly what it would from the wire.
func (r *Reader) Items(_ context.Context, collection string, q cms.Query, dst any) error {
	r.Calls = append(r.Calls, Call{Collection: collection, Query: q})
	if r.Err != nil {
		return r.Err
	}
	rows, ok := r.Rows[collection]
	if !ok {
		rows = []any{}
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding canned rows: %w", err)
	}
	return json.Unmarshal(raw, dst)
}

// Last returns the most recent call.
func (r *Reader) Last() Call {
	if len(r.Calls) == 0 {
		return Call{}
	}
	return r.Calls[len(r.Calls)-1]
}
