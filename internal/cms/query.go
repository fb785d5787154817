package cms

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Filter is a Directus filter object, e.g. {"status":{"_eq":"published"}}.
type Filter map[string]any

// Eq matches rows whose field equals value.
func Eq(field string, value any) Filter {
	return Filter{field: map[string]any{"_eq": value}}
}

// And combines filters; nil filters are dropped.
func And(filters ...Filter) Filter {
	parts := make([]any, 0, len(filters))
	for _, f := range filters {
		if len(f) > 0 {
			parts = append(parts, f)
		}
	}
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return parts[0].(Filter)
	}
	return Filter{"_and": parts}
}

// Query describes the list parameters of an items request.
type Query struct {
	Fields    []string
	Filter    Filter
	Sort      []string
	Limit     int
	Search    string
	Aggregate map[string]string
	GroupBy   []string
}

// Values encodes q as Directus query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	if len(q.Fields) > 0 {
		v.Set("fields", strings.Join(q.Fields, ","))
	}
	if len(q.Filter) > 0 {
		// Filter values are plain JSON types; marshalling cannot fail.
		raw, _ := json.Marshal(q.Filter)
		v.Set("filter", string(raw))
	}
	if len(q.Sort) > 0 {
		v.Set("sort", strings.Join(q.Sort, ","))
	}
	if q.Limit != 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	for fn, field := range q.Aggregate {
		v.Set("aggregate["+fn+"]", field)
	}
	if len(q.GroupBy) > 0 {
		v.Set("groupBy", strings.Join(q.GroupBy, ","))
	}
	return v
}
