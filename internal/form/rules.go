package form

import (
	"encoding/json"
	"math"
)

// Collections written by form submissions.
const (
	CollectionSubmissions = "form_submissions"
	CollectionNewsletter  = "newsletter_subscribers"
	CollectionFeedback    = "feedback_responses"
)

// Rule describes how one form type is validated and stored.
type Rule struct {
	Collection string
	Required   []string
	// Dedupe rejects a submission whose email already exists in Collection.
	Dedupe bool
	Build  func(t Type, f Fields, m Metadata) map[string]any
}

var leadRule = Rule{
	Collection: CollectionSubmissions,
	Required:   []string{"email"},
	Build:      buildSubmission,
}

// Rules maps every form type to its rule.
var Rules = map[Type]Rule{
	TypeContact: leadRule,
	TypeEnquiry: leadRule,
	TypeLanding: leadRule,
	TypeQuote:   leadRule,
	TypeNewsletter: {
		Collection: CollectionNewsletter,
		Required:   []string{"email"},
		Dedupe:     true,
		Build:      buildSubscriber,
	},
	TypeFeedback: {
		Collection: CollectionFeedback,
		Required:   []string{"email"},
		Build:      buildFeedback,
	},
}

func buildSubmission(t Type, f Fields, m Metadata) map[string]any {
	return map[string]any{
		"form_type":  string(t),
		"name":       orNil(f["name"]),
		"email":      f["email"],
		"phone":      orNil(f["phone"]),
		"company":    orNil(f["company"]),
		"event_type": orNil(f["eventType"]),
		"event_date": orNil(f["eventDate"]),
		"location":   orNil(f["location"]),
		"message":    orNil(f["message"]),
		"source":     source(f, m),
		"form_data":  f,
		"ip_address": m.ClientIP,
		"user_agent": m.UserAgent,
		"status":     "new",
		"notes":      nil,
	}
}

func buildSubscriber(_ Type, f Fields, m Metadata) map[string]any {
	return map[string]any{
		"email":      f["email"],
		"source":     source(f, m),
		"status":     "active",
		"ip_address": m.ClientIP,
	}
}

func buildFeedback(_ Type, f Fields, _ Metadata) map[string]any {
	return map[string]any{
		"name":            orNil(f["name"]),
		"role":            orNil(f["role"]),
		"overall_rating":  orNil(f["overallRating"]),
		"feedback_data":   f,
		"comments":        orNil(f["comments"]),
		"would_recommend": orNil(f["wouldRecommend"]),
	}
}

func source(f Fields, m Metadata) any {
	if v := orNil(f["source"]); v != nil {
		return v
	}
	return m.Referer
}

// orNil maps empty values (nil, "", false, 0, NaN) to nil and passes
// everything else through.
func orNil(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		if x == "" {
			return nil
		}
	case bool:
		if !x {
			return nil
		}
	case float64:
		if x == 0 || math.IsNaN(x) {
			return nil
		}
	case json.Number:
		if n, err := x.Float64(); err == nil && n == 0 {
			return nil
		}
	}
	return v
}

// present reports whether v counts as a supplied value.
func present(v any) bool {
	return orNil(v) != nil
}
