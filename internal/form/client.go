package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultFeedbackEmail is attached to feedback submissions, which have no
// visitor email field.
const DefaultFeedbackEmail = "feedback@whitemassif.com"

const (
	networkErrorMessage = "Network error. Please check your connection and try again."
	invalidEmailMessage = "Please enter a valid email address."
	invalidPhoneMessage = "Please enter a valid phone number."
)

// ErrInvalidPhone is reported by Client when a phone field is not a plausible
// number.
var ErrInvalidPhone = errors.New("invalid phone number")

// Doer sends HTTP requests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is the outcome of a submission as seen by the caller.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      any    `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
	// Notice is the visitor-facing text for the outcome, see StatusMessage.
	Notice string `json:"notice,omitempty"`
}

// Client posts form submissions to the site's submit endpoint.
type Client struct {
	endpoint string
	http     Doer
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDoer replaces the HTTP transport.
func WithDoer(d Doer) ClientOption {
	return func(c *Client) {
		if d != nil {
			c.http = d
		}
	}
}

// NewClient creates a Client posting to endpoint, e.g.
// "https://whitemassif.com/api/submit-form".
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitContact sends a contact page submission.
func (c *Client) SubmitContact(ctx context.Context, f Fields) Response {
	return c.Submit(ctx, TypeContact, with(f, map[string]any{"source": "contact-page"}))
}

// SubmitEnquiry sends an enquiry popup submission.
func (c *Client) SubmitEnquiry(ctx context.Context, f Fields) Response {
	return c.Submit(ctx, TypeEnquiry, withDefaultSource(f, "enquiry-popup"))
}

// SubmitNewsletter sends a newsletter signup.
func (c *Client) SubmitNewsletter(ctx context.Context, f Fields) Response {
	return c.Submit(ctx, TypeNewsletter, withDefaultSource(f, "footer-newsletter"))
}

// SubmitFeedback sends a feedback response under DefaultFeedbackEmail.
func (c *Client) SubmitFeedback(ctx context.Context, f Fields) Response {
	return c.Submit(ctx, TypeFeedback, with(f, map[string]any{
		"email":  DefaultFeedbackEmail,
		"source": "feedback-page",
	}))
}

// SubmitLanding sends a landing page lead.
func (c *Client) SubmitLanding(ctx context.Context, f Fields) Response {
	return c.Submit(ctx, TypeLanding, withDefaultSource(f, "landing-page"))
}

// SubmitQuote sends a quick quote request.
func (c *Client) SubmitQuote(ctx context.Context, f Fields) Response {
	return c.Submit(ctx, TypeQuote, withDefaultSource(f, "quote-form"))
}

// Submit sanitizes f, checks its email and phone fields and posts it tagged
// with t. Invalid fields are reported without sending anything. Transport and
// decoding failures come back as an unsuccessful Response carrying a generic
// network message.
func (c *Client) Submit(ctx context.Context, t Type, f Fields) Response {
	f = Sanitize(f)
	if email, ok := f["email"].(string); ok && email != "" && !ValidateEmail(email) {
		return Response{Message: invalidEmailMessage, Error: ErrInvalidEmail.Error(), Notice: StatusMessage(t, false)}
	}
	if phone, ok := f["phone"].(string); ok && phone != "" && !ValidatePhone(phone) {
		return Response{Message: invalidPhoneMessage, Error: ErrInvalidPhone.Error(), Notice: StatusMessage(t, false)}
	}

	resp, err := c.post(ctx, with(f, map[string]any{"formType": string(t)}))
	if err != nil {
		resp = Response{Message: networkErrorMessage, Error: err.Error()}
	}
	resp.Notice = StatusMessage(t, resp.Success)
	return resp
}

func (c *Client) post(ctx context.Context, body Fields) (Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("encoding submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("posting submission: %w", err)
	}
	defer res.Body.Close()

	var decoded Response
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return Response{}, fmt.Errorf("decoding response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := decoded.Error
		if msg == "" {
			msg = "Form submission failed"
		}
		return Response{Message: msg, Error: decoded.Error}, nil
	}

	if decoded.Message == "" {
		decoded.Message = "Form submitted successfully"
	}
	return Response{Success: true, Message: decoded.Message, ID: decoded.ID}, nil
}

func with(f Fields, overrides map[string]any) Fields {
	out := f.Without()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

func withDefaultSource(f Fields, def string) Fields {
	if present(f["source"]) {
		return f.Without()
	}
	return with(f, map[string]any{"source": def})
}
