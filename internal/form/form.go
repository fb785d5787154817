// Package form turns website form payloads into CMS records.
package form

import (
	"errors"
	"net/http"
	"strings"
)

// Type is the formType discriminator of a submission.
type Type string

const (
	TypeContact    Type = "contact"
	TypeEnquiry    Type = "enquiry"
	TypeNewsletter Type = "newsletter"
	TypeFeedback   Type = "feedback"
	TypeLanding    Type = "landing"
	TypeQuote      Type = "quote"
)

// Types lists every accepted form type.
var Types = []Type{TypeContact, TypeEnquiry, TypeNewsletter, TypeFeedback, TypeLanding, TypeQuote}

// Validation errors. Each maps to a 400 response.
var (
	ErrMissingFormType = errors.New("form type is required")
	ErrInvalidFormType = errors.New("invalid form type")
	ErrEmailRequired   = errors.New("email is required")
	ErrInvalidEmail    = errors.New("invalid email address")
)

// ErrAlreadySubscribed is returned when a newsletter email is already on file.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// ErrStore wraps every failed CMS call made while handling a submission.
var ErrStore = errors.New("cms store failed")

// Fields is a decoded submission body.
type Fields map[string]any

// String returns the value of key when it is a non-empty string.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// Without returns a copy of f minus the given keys.
func (f Fields) Without(keys ...string) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Metadata is what the server knows about the submitting client.
type Metadata struct {
	ClientIP  string
	UserAgent string
	Referer   string
}

// MetadataFromRequest extracts client metadata from proxy and browser headers.
func MetadataFromRequest(r *http.Request) Metadata {
	return Metadata{
		ClientIP:  ClientIP(r.Header),
		UserAgent: r.Header.Get("User-Agent"),
		Referer:   r.Header.Get("Referer"),
	}
}

// ClientIP picks the first X-Forwarded-For hop, then CF-Connecting-IP, then
// X-Real-IP. It returns "unknown" when none is set.
func ClientIP(h http.Header) string {
	if fwd := h.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	if cf := h.Get("CF-Connecting-IP"); cf != "" {
		return cf
	}
	if realIP := h.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return "unknown"
}
