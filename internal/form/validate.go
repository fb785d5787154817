package form

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{3,14}$`)
	phoneNoise   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "\t", "")
	strict       = bluemonday.StrictPolicy()
)

// ValidateEmail reports whether s looks like an email address.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePhone reports whether s is a plausible phone number once spaces,
// dashes and parentheses are removed.
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(phoneNoise.Replace(s))
}

// Validate applies the required-field checks of rule to f.
func Validate(rule Rule, f Fields) error {
	for _, field := range rule.Required {
		if !present(f[field]) {
			if field == "email" {
				return ErrEmailRequired
			}
			return &MissingFieldError{Field: field}
		}
	}
	if v, ok := f["email"]; ok && present(v) {
		s, isString := v.(string)
		if !isString || !ValidateEmail(s) {
			return ErrInvalidEmail
		}
	}
	return nil
}

// MissingFieldError reports a required field other than email that was left empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is required"
}

// Sanitize strips markup from every string value and trims it. Other values
// are copied unchanged.
func Sanitize(f Fields) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if s, ok := v.(string); ok {
			out[k] = strings.TrimSpace(strict.Sanitize(s))
			continue
		}
		out[k] = v
	}
	return out
}

// StatusMessage is the text shown to a visitor after submitting a form.
func StatusMessage(t Type, ok bool) string {
	if !ok {
		return "Sorry, there was an error submitting your form. Please try again or contact us directly."
	}
	switch t {
	case TypeContact:
		return "Thank you for contacting us! We'll get back to you soon."
	case TypeEnquiry:
		return "Thank you for your enquiry! Our team will contact you soon to discuss your event."
	case TypeNewsletter:
		return "Successfully subscribed to our newsletter!"
	case TypeFeedback:
		return "Thank you for your valuable feedback!"
	case TypeLanding:
		return "Thank you for your interest! We'll be in touch soon."
	case TypeQuote:
		return "Thank you! We'll prepare a quote and send it to you shortly."
	}
	return "Form submitted successfully!"
}
