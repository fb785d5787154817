package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SlugRegex matches the slugs generated for CMS content.
var SlugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const (
	maxSlugLen   = 200
	maxSearchLen = 100
	maxPage      = 10000
)

// ValidSlug reports whether s can name a CMS item. Page handlers answer 404
// for anything else without asking the CMS.
func ValidSlug(s string) bool {
	return len(s) <= maxSlugLen && SlugRegex.MatchString(s)
}

// ClientsQuery is the validated query of GET /api/clients.
type ClientsQuery struct {
	Search string
	Page   int
}

// ValidateClientsQuery checks the search and page parameters of the client
// logo modal. A missing page means page 1.
func ValidateClientsQuery(search, page string) (ClientsQuery, []FieldError) {
	var errs []FieldError
	q := ClientsQuery{Search: strings.TrimSpace(search), Page: 1}

	if len(q.Search) > maxSearchLen {
		errs = append(errs, FieldError{Field: "search", Message: "search must be at most 100 characters"})
	}

	if page != "" {
		n, err := strconv.Atoi(page)
		switch {
		case err != nil || n < 1:
			errs = append(errs, FieldError{Field: "page", Message: "page must be a positive integer"})
		case n > maxPage:
			errs = append(errs, FieldError{Field: "page", Message: "page must be at most " + strconv.Itoa(maxPage)})
		default:
			q.Page = n
		}
	}

	return q, errs
}

// ValidateListLimit parses the limit parameter of list endpoints. An empty
// value yields defaultLimit; values above maxLimit are rejected.
func ValidateListLimit(raw string, defaultLimit, maxLimit int) (int, []FieldError) {
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, []FieldError{{Field: "limit", Message: "limit must be a positive integer"}}
	}
	if n > maxLimit {
		return 0, []FieldError{{Field: "limit", Message: "limit must be at most " + strconv.Itoa(maxLimit)}}
	}
	return n, nil
}
