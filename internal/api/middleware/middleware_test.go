package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitemassif/website/internal/api/middleware"
	"github.com/whitemassif/website/internal/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err)
	return env
}

// --- RequestID Tests ---

func TestRequestID_GeneratesNewID(t *testing.T) {
	// Arrange
	var capturedID string
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = middleware.GetRequestID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	_, err := uuid.Parse(capturedID)
	assert.NoError(t, err, "generated request ID should be a valid UUID")
	assert.Equal(t, capturedID, w.Header().Get("X-Request-ID"))
}

func TestRequestID_IncomingHeader(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "proxy id reused", incoming: "edge-7f3a9c", reused: true},
		{name: "spaces rejected", incoming: "has spaces", reused: false},
		{name: "newline rejected", incoming: "abc\ninjected", reused: false},
		{name: "too long rejected", incoming: strings.Repeat("a", 129), reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var capturedID string
			handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				capturedID = middleware.GetRequestID(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Request-ID", tt.incoming)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if tt.reused {
				assert.Equal(t, tt.incoming, capturedID)
			} else {
				assert.NotEqual(t, tt.incoming, capturedID)
				_, err := uuid.Parse(capturedID)
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetRequestID_EmptyContext(t *testing.T) {
	assert.Equal(t, "", middleware.GetRequestID(context.Background()))
}

// --- Recovery Tests ---

func TestRecovery_NoPanic(t *testing.T) {
	handler := middleware.Recovery(okHandler())
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery_APIRouteGetsEnvelope(t *testing.T) {
	// Arrange: chain RequestID -> Recovery -> panicking handler
	panicker := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := middleware.RequestID(middleware.Recovery(panicker))
	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	w := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	env := parseEnvelope(t, w)
	apiErr := env["error"].(map[string]interface{})
	assert.Equal(t, "INTERNAL_ERROR", apiErr["code"])
	meta := env["meta"].(map[string]interface{})
	assert.Equal(t, w.Header().Get("X-Request-ID"), meta["requestId"])
}

func TestRecovery_PageRouteGetsPlainText(t *testing.T) {
	handler := middleware.Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("template exploded")
	}))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blog/some-post", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}

// --- Auth Tests ---

type mockAuthenticator struct {
	authenticateFn func(ctx context.Context, rawKey string) (*auth.Identity, error)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, rawKey string) (*auth.Identity, error) {
	return m.authenticateFn(ctx, rawKey)
}

func TestAuth_MissingKey(t *testing.T) {
	handler := middleware.Auth(&mockAuthenticator{})(okHandler())
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/revalidate", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := parseEnvelope(t, w)
	assert.Equal(t, "API key is required", env["error"].(map[string]interface{})["message"])
}

func TestAuth_InvalidKey(t *testing.T) {
	authn := &mockAuthenticator{authenticateFn: func(context.Context, string) (*auth.Identity, error) {
		return nil, auth.ErrInvalidKey
	}}
	handler := middleware.Auth(authn)(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/api/revalidate", nil)
	req.Header.Set("X-API-Key", "wm_wrong")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := parseEnvelope(t, w)
	assert.Equal(t, "UNAUTHORIZED", env["error"].(map[string]interface{})["code"])
}

func TestAuth_BackendError(t *testing.T) {
	authn := &mockAuthenticator{authenticateFn: func(context.Context, string) (*auth.Identity, error) {
		return nil, assert.AnError
	}}
	handler := middleware.Auth(authn)(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/api/revalidate", nil)
	req.Header.Set("X-API-Key", "wm_any")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuth_ValidKeyStoresIdentity(t *testing.T) {
	var gotKey string
	authn := &mockAuthenticator{authenticateFn: func(_ context.Context, rawKey string) (*auth.Identity, error) {
		gotKey = rawKey
		return &auth.Identity{Operator: "ops"}, nil
	}}
	var identity *auth.Identity
	handler := middleware.Auth(authn)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity = middleware.GetIdentity(r.Context())
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/revalidate", nil)
	req.Header.Set("X-API-Key", "wm_good")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, "wm_good", gotKey)
	require.NotNil(t, identity)
	assert.Equal(t, "ops", identity.Operator)
}

func TestGetIdentity_EmptyContext(t *testing.T) {
	assert.Nil(t, middleware.GetIdentity(context.Background()))
}
