package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/whitemassif/website/internal/audit"
	"github.com/whitemassif/website/internal/blog"
	"github.com/whitemassif/website/internal/clientlogo"
	"github.com/whitemassif/website/internal/form"
	"github.com/whitemassif/website/internal/landing"
	"github.com/whitemassif/website/internal/offering"
	"github.com/whitemassif/website/internal/portfolio"
	"github.com/whitemassif/website/internal/team"
)

// --- Form mocks ---

type mockSubmitter struct {
	submitFn func(ctx context.Context, body form.Fields, meta form.Metadata) (*form.Result, error)
}

func (m *mockSubmitter) Submit(ctx context.Context, body form.Fields, meta form.Metadata) (*form.Result, error) {
	return m.submitFn(ctx, body, meta)
}

type mockRecorder struct {
	events []audit.Event
}

func (m *mockRecorder) Record(_ context.Context, e audit.Event) {
	m.events = append(m.events, e)
}

// --- Content mocks ---

type mockPosts struct {
	listFn func(ctx context.Context, limit int) ([]blog.Post, error)
	getFn  func(ctx context.Context, slug string) (*blog.Post, error)
}

func (m *mockPosts) ListPublished(ctx context.Context, limit int) ([]blog.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return []blog.Post{}, nil
}

func (m *mockPosts) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	if m.getFn != nil {
		return m.getFn(ctx, slug)
	}
	return nil, blog.ErrPostNotFound
}

type mockServices struct {
	listFn     func(ctx context.Context) ([]offering.Service, error)
	getFn      func(ctx context.Context, slug string) (*offering.Service, error)
	categoryFn func(ctx context.Context, category string) ([]offering.Service, error)
}

func (m *mockServices) ListActive(ctx context.Context) ([]offering.Service, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []offering.Service{}, nil
}

func (m *mockServices) GetBySlug(ctx context.Context, slug string) (*offering.Service, error) {
	if m.getFn != nil {
		return m.getFn(ctx, slug)
	}
	return nil, offering.ErrServiceNotFound
}

func (m *mockServices) ListByCategory(ctx context.Context, category string) ([]offering.Service, error) {
	if m.categoryFn != nil {
		return m.categoryFn(ctx, category)
	}
	return m.ListActive(ctx)
}

type mockProjects struct {
	listFn func(ctx context.Context) ([]portfolio.Project, error)
}

func (m *mockProjects) ListPublished(ctx context.Context) ([]portfolio.Project, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []portfolio.Project{}, nil
}

type mockTeam struct {
	listFn func(ctx context.Context) ([]team.Member, error)
}

func (m *mockTeam) ListActive(ctx context.Context) ([]team.Member, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []team.Member{}, nil
}

type mockLandings struct {
	getFn func(ctx context.Context, slug string) (*landing.Page, error)
}

func (m *mockLandings) ListActive(context.Context) ([]landing.Page, error) {
	return []landing.Page{}, nil
}

func (m *mockLandings) GetBySlug(ctx context.Context, slug string) (*landing.Page, error) {
	if m.getFn != nil {
		return m.getFn(ctx, slug)
	}
	return nil, landing.ErrPageNotFound
}

type mockLogos struct {
	listFn       func(ctx context.Context) ([]clientlogo.Logo, error)
	industryFn   func(ctx context.Context, industry string) ([]clientlogo.Logo, error)
	industriesFn func(ctx context.Context) ([]clientlogo.Industry, error)
	countFn      func(ctx context.Context) (int, error)
}

func (m *mockLogos) List(ctx context.Context) ([]clientlogo.Logo, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []clientlogo.Logo{}, nil
}

func (m *mockLogos) ListByIndustry(ctx context.Context, industry string) ([]clientlogo.Logo, error) {
	if m.industryFn != nil {
		return m.industryFn(ctx, industry)
	}
	return m.List(ctx)
}

func (m *mockLogos) Industries(ctx context.Context) ([]clientlogo.Industry, error) {
	if m.industriesFn != nil {
		return m.industriesFn(ctx)
	}
	return []clientlogo.Industry{}, nil
}

func (m *mockLogos) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type fakeAssets struct{}

func (fakeAssets) AssetURL(id, _ string) string {
	if id == "" {
		return ""
	}
	return "https://cms.example.test/assets/" + id
}

func (f fakeAssets) AssetURLs(ids []string, key string) []string {
	out := []string{}
	for _, id := range ids {
		if u := f.AssetURL(id, key); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// --- Helpers ---

func slugRequest(path, slug string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("slug", slug)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
