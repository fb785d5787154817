// Package slug derives URL path segments from titles.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Generate lowercases s, collapses every run of characters outside [a-z0-9]
// into a single "-" and trims leading and trailing dashes. Generate is
// idempotent: Generate(Generate(s)) == Generate(s).
func Generate(s string) string {
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
