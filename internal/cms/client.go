package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const maxResponseBytes = 8 << 20

// Doer is the subset of *http.Client the CMS client needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Reader is the read side of Client used by the content repositories.
type Reader interface {
	Items(ctx context.Context, collection string, q Query, dst any) error
}

// Client issues authenticated REST calls against the CMS.
type Client struct {
	baseURL    string
	token      string
	assetToken string
	http       Doer
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP transport.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.http = d
		}
	}
}

// WithTimeout sets a per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http = &http.Client{Timeout: d}
	}
}

// WithAssetToken sets the token appended to public asset URLs.
func WithAssetToken(token string) Option {
	return func(c *Client) {
		c.assetToken = strings.TrimSpace(token)
	}
}

// New creates a Client for the CMS at baseURL using a static bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   strings.TrimSpace(token),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the CMS base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Items lists rows of collection matching q and decodes them into dst.
// Both {"data":[...]} and bare array responses are accepted.
func (c *Client) Items(ctx context.Context, collection string, q Query, dst any) error {
	raw, err := c.do(ctx, http.MethodGet, "items/"+url.PathEscape(collection), q.Values(), nil)
	if err != nil {
		return err
	}
	if err := decodeData(raw, dst); err != nil {
		return fmt.Errorf("decoding %s items: %w", collection, err)
	}
	return nil
}

// Item fetches the row identified by id and decodes it into dst.
func (c *Client) Item(ctx context.Context, collection string, id any, dst any) error {
	raw, err := c.do(ctx, http.MethodGet, itemPath(collection, id), nil, nil)
	if err != nil {
		return err
	}
	if err := decodeData(raw, dst); err != nil {
		return fmt.Errorf("decoding %s item: %w", collection, err)
	}
	return nil
}

// CreateItem inserts item into collection and returns the identifier the CMS
// assigned to it.
func (c *Client) CreateItem(ctx context.Context, collection string, item any) (any, error) {
	raw, err := c.do(ctx, http.MethodPost, "items/"+url.PathEscape(collection), nil, item)
	if err != nil {
		return nil, err
	}

	var created struct {
		ID any `json:"id"`
	}
	if err := decodeData(raw, &created); err != nil {
		return nil, fmt.Errorf("decoding created %s item: %w", collection, err)
	}
	return created.ID, nil
}

// UpdateItem applies a partial update to the row identified by id.
func (c *Client) UpdateItem(ctx context.Context, collection string, id any, patch any) error {
	_, err := c.do(ctx, http.MethodPatch, itemPath(collection, id), nil, patch)
	return err
}

// DeleteItem removes the row identified by id.
func (c *Client) DeleteItem(ctx context.Context, collection string, id any) error {
	_, err := c.do(ctx, http.MethodDelete, itemPath(collection, id), nil, nil)
	return err
}

// Count returns the number of rows in collection matching filter.
func (c *Client) Count(ctx context.Context, collection string, filter Filter) (int, error) {
	q := Query{Filter: filter, Aggregate: map[string]string{"count": "*"}}

	var rows []map[string]any
	if err := c.Items(ctx, collection, q, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return AggregateInt(rows[0]["count"])
}

// Fields returns the field definitions of collection.
func (c *Client) Fields(ctx context.Context, collection string) ([]Field, error) {
	raw, err := c.do(ctx, http.MethodGet, "fields/"+url.PathEscape(collection), nil, nil)
	if err != nil {
		return nil, err
	}
	var fields []Field
	if err := decodeData(raw, &fields); err != nil {
		return nil, fmt.Errorf("decoding %s fields: %w", collection, err)
	}
	return fields, nil
}

// CreateField adds a field to collection.
func (c *Client) CreateField(ctx context.Context, collection string, f Field) error {
	_, err := c.do(ctx, http.MethodPost, "fields/"+url.PathEscape(collection), nil, f)
	return err
}

// Collection returns the definition of a single collection.
func (c *Client) Collection(ctx context.Context, name string) (*Collection, error) {
	raw, err := c.do(ctx, http.MethodGet, "collections/"+url.PathEscape(name), nil, nil)
	if err != nil {
		return nil, err
	}
	var col Collection
	if err := decodeData(raw, &col); err != nil {
		return nil, fmt.Errorf("decoding collection %s: %w", name, err)
	}
	return &col, nil
}

// CreateCollection defines a new collection.
func (c *Client) CreateCollection(ctx context.Context, def Collection) error {
	_, err := c.do(ctx, http.MethodPost, "collections", nil, def)
	return err
}

// ServerInfo returns the CMS server information document.
func (c *Client) ServerInfo(ctx context.Context) (map[string]any, error) {
	raw, err := c.do(ctx, http.MethodGet, "server/info", nil, nil)
	if err != nil {
		return nil, err
	}
	info := map[string]any{}
	if err := decodeData(raw, &info); err != nil {
		return nil, fmt.Errorf("decoding server info: %w", err)
	}
	return info, nil
}

// Ping checks that the CMS answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "server/ping", nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s %s response: %w", method, path, err)
	}

	slog.Debug("cms request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start).String())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	return raw, nil
}

func itemPath(collection string, id any) string {
	return "items/" + url.PathEscape(collection) + "/" + url.PathEscape(fmt.Sprint(id))
}

// decodeData unwraps the {"data": ...} envelope when present.
func decodeData(raw []byte, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '{' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &env); err == nil && env.Data != nil {
			return unmarshalNumbers(env.Data, dst)
		}
	}
	return unmarshalNumbers(trimmed, dst)
}

func unmarshalNumbers(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(dst)
}

// AggregateInt reads an aggregate value that may be a number, a numeric string,
// or an object keyed by the aggregated field.
func AggregateInt(v any) (int, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case json.Number:
		n, err := val.Int64()
		return int(n), err
	case float64:
		return int(val), nil
	case string:
		if val == "" {
			return 0, nil
		}
		return strconv.Atoi(val)
	case map[string]any:
		for _, inner := range val {
			return AggregateInt(inner)
		}
		return 0, nil
	}
	return 0, fmt.Errorf("unexpected aggregate value %T", v)
}
