package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitemassif/website/internal/api/handler"
	"github.com/whitemassif/website/internal/blog"
	"github.com/whitemassif/website/internal/clientlogo"
	"github.com/whitemassif/website/internal/landing"
	"github.com/whitemassif/website/internal/offering"
	"github.com/whitemassif/website/internal/seo"
	"github.com/whitemassif/website/internal/team"
	"github.com/whitemassif/website/internal/web"
)

func newPageHandler(t *testing.T, deps handler.PageDeps) *handler.PageHandler {
	t.Helper()
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	if deps.Posts == nil {
		deps.Posts = &mockPosts{}
	}
	if deps.Services == nil {
		deps.Services = &mockServices{}
	}
	if deps.Team == nil {
		deps.Team = &mockTeam{}
	}
	if deps.Landings == nil {
		deps.Landings = &mockLandings{}
	}
	if deps.Logos == nil {
		deps.Logos = &mockLogos{}
	}
	if deps.Projects == nil {
		deps.Projects = &mockProjects{}
	}
	deps.Assets = fakeAssets{}
	deps.Site = seo.New("https://www.whitemassif.com")
	deps.Renderer = renderer
	return handler.NewPageHandler(deps)
}

func samplePosts() []blog.Post {
	return []blog.Post{
		{ID: 1, Title: "Diwali Office Party Ideas", Slug: "diwali-office-party-ideas", Excerpt: "Light up the office.", PublishedDate: "2025-10-01", Status: "published"},
		{ID: 2, Title: "Offsite Planning Checklist", Slug: "offsite-planning-checklist", Excerpt: "Plan it right.", PublishedDate: "2025-09-12", Status: "published"},
		{ID: 3, Title: "Team Building in Bangalore", Slug: "team-building-in-bangalore", Excerpt: "Venues and formats.", PublishedDate: "2025-08-20", Status: "published"},
		{ID: 4, Title: "Annual Day Themes", Slug: "annual-day-themes", Excerpt: "Ideas for the stage.", PublishedDate: "2025-07-02", Status: "published"},
	}
}

func TestPageHandler_Home(t *testing.T) {
	// Arrange
	var gotLimit int
	posts := &mockPosts{listFn: func(_ context.Context, limit int) ([]blog.Post, error) {
		gotLimit = limit
		return samplePosts()[:limit], nil
	}}
	logos := &mockLogos{countFn: func(context.Context) (int, error) { return 240, nil }}
	h := newPageHandler(t, handler.PageDeps{Posts: posts, Logos: logos})
	w := httptest.NewRecorder()

	// Act
	h.Home(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, gotLimit)
	body := w.Body.String()
	assert.Contains(t, body, "Diwali Office Party Ideas")
	assert.NotContains(t, body, "Annual Day Themes")
	assert.Contains(t, body, `"@type":"FAQPage"`)
	assert.Contains(t, body, `"@type":"Organization"`)
}

func TestPageHandler_HomeSurvivesCMSFailure(t *testing.T) {
	posts := &mockPosts{listFn: func(context.Context, int) ([]blog.Post, error) { return nil, assert.AnError }}
	services := &mockServices{listFn: func(context.Context) ([]offering.Service, error) { return nil, assert.AnError }}
	logos := &mockLogos{countFn: func(context.Context) (int, error) { return 0, assert.AnError }}
	h := newPageHandler(t, handler.PageDeps{Posts: posts, Services: services, Logos: logos})
	w := httptest.NewRecorder()

	h.Home(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPageHandler_BlogListEmptyState(t *testing.T) {
	posts := &mockPosts{listFn: func(context.Context, int) ([]blog.Post, error) { return nil, assert.AnError }}
	h := newPageHandler(t, handler.PageDeps{Posts: posts})
	w := httptest.NewRecorder()

	h.BlogList(w, httptest.NewRequest(http.MethodGet, "/blog", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No posts have been published yet")
}

func TestPageHandler_BlogPost(t *testing.T) {
	// Arrange
	all := samplePosts()
	post := all[0]
	post.Content = "## Lighting\n\nUse **diyas** and fairy lights."
	post.FeaturedImage = "img-1"
	post.Tags = []string{"diwali", "office party"}
	posts := &mockPosts{
		listFn: func(_ context.Context, limit int) ([]blog.Post, error) { return all[:limit], nil },
		getFn: func(_ context.Context, slug string) (*blog.Post, error) {
			assert.Equal(t, "diwali-office-party-ideas", slug)
			return &post, nil
		},
	}
	h := newPageHandler(t, handler.PageDeps{Posts: posts})
	w := httptest.NewRecorder()

	// Act
	h.BlogPost(w, slugRequest("/blog/diwali-office-party-ideas", "diwali-office-party-ideas"))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<strong>diyas</strong>")
	assert.Contains(t, body, `<link rel="canonical" href="https://www.whitemassif.com/blog/diwali-office-party-ideas">`)
	assert.Contains(t, body, "https://cms.example.test/assets/img-1")
	assert.Contains(t, body, `"@type":"Article"`)
	assert.Contains(t, body, `"@type":"BreadcrumbList"`)

	related := body[strings.Index(body, "More from the blog"):]
	assert.Contains(t, related, "Offsite Planning Checklist")
	assert.Contains(t, related, "Annual Day Themes")
	assert.NotContains(t, related, "/blog/diwali-office-party-ideas")
}

func TestPageHandler_BlogPostMissing(t *testing.T) {
	tests := []struct {
		name       string
		slug       string
		getErr     error
		wantStatus int
		wantCalled bool
	}{
		{name: "unknown slug", slug: "no-such-post", getErr: blog.ErrPostNotFound, wantStatus: http.StatusNotFound, wantCalled: true},
		{name: "invalid slug", slug: "Bad_Slug!", wantStatus: http.StatusNotFound},
		{name: "cms failure", slug: "any-post", getErr: assert.AnError, wantStatus: http.StatusServiceUnavailable, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			posts := &mockPosts{getFn: func(context.Context, string) (*blog.Post, error) {
				called = true
				return nil, tt.getErr
			}}
			h := newPageHandler(t, handler.PageDeps{Posts: posts})
			w := httptest.NewRecorder()

			h.BlogPost(w, slugRequest("/blog/"+tt.slug, tt.slug))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalled, called)
			assert.Contains(t, w.Body.String(), `content="noindex, nofollow"`)
		})
	}
}

func TestPageHandler_ServicesGroupsByCategory(t *testing.T) {
	services := &mockServices{listFn: func(context.Context) ([]offering.Service, error) {
		return []offering.Service{
			{ID: 1, Title: "Conferences", Slug: "conferences", Category: "Business Events"},
			{ID: 2, Title: "Team Outings", Slug: "team-outings", Category: "Team Building"},
			{ID: 3, Title: "Product Launches", Slug: "product-launches", Category: "Business Events"},
			{ID: 4, Title: "Photo Booths", Slug: "photo-booths"},
		}, nil
	}}
	h := newPageHandler(t, handler.PageDeps{Services: services})
	w := httptest.NewRecorder()

	h.Services(w, httptest.NewRequest(http.MethodGet, "/services", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	business := strings.Index(body, "<h2>Business Events</h2>")
	teamBuilding := strings.Index(body, "<h2>Team Building</h2>")
	other := strings.Index(body, "<h2>Other Services</h2>")
	require.NotEqual(t, -1, business)
	require.NotEqual(t, -1, teamBuilding)
	require.NotEqual(t, -1, other)
	assert.Less(t, business, teamBuilding)
	assert.Less(t, teamBuilding, other)
	assert.Less(t, strings.Index(body, "Product Launches"), teamBuilding)
}

func TestPageHandler_ServicesFiltersByCategory(t *testing.T) {
	// Arrange
	var gotCategory string
	services := &mockServices{
		listFn: func(context.Context) ([]offering.Service, error) {
			return []offering.Service{
				{ID: 1, Title: "Conferences", Slug: "conferences", Category: "Business Events"},
				{ID: 2, Title: "Team Outings", Slug: "team-outings", Category: "Team Building"},
				{ID: 3, Title: "Photo Booths", Slug: "photo-booths"},
			}, nil
		},
		categoryFn: func(_ context.Context, category string) ([]offering.Service, error) {
			gotCategory = category
			return []offering.Service{{ID: 2, Title: "Team Outings", Slug: "team-outings", Category: "Team Building"}}, nil
		},
	}
	h := newPageHandler(t, handler.PageDeps{Services: services})
	w := httptest.NewRecorder()

	// Act
	h.Services(w, httptest.NewRequest(http.MethodGet, "/services?category=Team+Building", nil))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Team Building", gotCategory)
	body := w.Body.String()
	assert.Contains(t, body, `href="/services/team-outings"`)
	assert.NotContains(t, body, `href="/services/conferences"`)
	assert.Contains(t, body, "Business Events")
}

func TestPageHandler_ServicesIgnoresUnknownCategory(t *testing.T) {
	called := false
	services := &mockServices{
		listFn: func(context.Context) ([]offering.Service, error) {
			return []offering.Service{{ID: 1, Title: "Conferences", Slug: "conferences", Category: "Business Events"}}, nil
		},
		categoryFn: func(context.Context, string) ([]offering.Service, error) {
			called = true
			return nil, nil
		},
	}
	h := newPageHandler(t, handler.PageDeps{Services: services})
	w := httptest.NewRecorder()

	h.Services(w, httptest.NewRequest(http.MethodGet, "/services?category=Other+Services", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, called)
	assert.Contains(t, w.Body.String(), `href="/services/conferences"`)
}

func TestPageHandler_Service(t *testing.T) {
	svc := offering.Service{ID: 1, Title: "Conferences", Slug: "conferences", Category: "Business Events", Description: "Summits and conferences.", Gallery: []string{"g1", "g2"}}
	services := &mockServices{
		getFn:  func(context.Context, string) (*offering.Service, error) { return &svc, nil },
		listFn: func(context.Context) ([]offering.Service, error) { return []offering.Service{svc}, nil },
	}
	h := newPageHandler(t, handler.PageDeps{Services: services})
	w := httptest.NewRecorder()

	h.Service(w, slugRequest("/services/conferences", "conferences"))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"@type":"Service"`)
	assert.Contains(t, body, "https://cms.example.test/assets/g2")
}

func TestPageHandler_ServiceNotFound(t *testing.T) {
	h := newPageHandler(t, handler.PageDeps{})
	w := httptest.NewRecorder()

	h.Service(w, slugRequest("/services/nope", "nope"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Service Not Found")
}

func TestPageHandler_Team(t *testing.T) {
	years := 20
	members := &mockTeam{listFn: func(context.Context) ([]team.Member, error) {
		return []team.Member{
			{ID: 1, Name: "Prakash A Vaswani", Position: "Founder", Department: team.DepartmentLeadership, YearsExperience: &years},
			{ID: 2, Name: "Asha Rao", Position: "Creative Director", Department: team.DepartmentCreative, Image: "asha"},
		}, nil
	}}
	h := newPageHandler(t, handler.PageDeps{Team: members})
	w := httptest.NewRecorder()

	h.Team(w, httptest.NewRequest(http.MethodGet, "/team", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h2>Leadership</h2>")
	assert.Contains(t, body, "<h2>Creative</h2>")
	assert.Contains(t, body, "2 people")
	assert.Contains(t, body, "https://cms.example.test/assets/asha")
	assert.Contains(t, body, `"@type":"Person"`)
}

func TestPageHandler_TeamEmpty(t *testing.T) {
	h := newPageHandler(t, handler.PageDeps{})
	w := httptest.NewRecorder()

	h.Team(w, httptest.NewRequest(http.MethodGet, "/team", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Team profiles are coming soon.")
}

func TestPageHandler_Clients(t *testing.T) {
	logos := &mockLogos{listFn: func(context.Context) ([]clientlogo.Logo, error) {
		return []clientlogo.Logo{
			{ID: 1, Name: "Infosys", Category: "Technology", Logo: "infosys-logo"},
			{ID: 2, Name: "Microsoft", Category: "Technology"},
		}, nil
	}}
	h := newPageHandler(t, handler.PageDeps{Logos: logos})
	w := httptest.NewRecorder()

	h.Clients(w, httptest.NewRequest(http.MethodGet, "/clients", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "https://cms.example.test/assets/infosys-logo")
	assert.Contains(t, body, "Microsoft")
}

func TestPageHandler_ClientsFiltersByIndustry(t *testing.T) {
	// Arrange
	var gotIndustry string
	logos := &mockLogos{
		listFn: func(context.Context) ([]clientlogo.Logo, error) {
			return []clientlogo.Logo{{ID: 1, Name: "Infosys", Category: "Technology"}}, nil
		},
		industryFn: func(_ context.Context, industry string) ([]clientlogo.Logo, error) {
			gotIndustry = industry
			return []clientlogo.Logo{{ID: 2, Name: "HDFC Bank", Category: "Banking"}}, nil
		},
		industriesFn: func(context.Context) ([]clientlogo.Industry, error) {
			return []clientlogo.Industry{{Category: "Banking", Count: 1}, {Category: "Technology", Count: 1}}, nil
		},
	}
	h := newPageHandler(t, handler.PageDeps{Logos: logos})
	w := httptest.NewRecorder()

	// Act
	h.Clients(w, httptest.NewRequest(http.MethodGet, "/clients?industry=Banking", nil))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Banking", gotIndustry)
	body := w.Body.String()
	assert.Contains(t, body, "HDFC Bank")
	assert.NotContains(t, body, "Infosys")
}

func TestPageHandler_ClientsIgnoresUnknownIndustry(t *testing.T) {
	called := false
	logos := &mockLogos{
		listFn: func(context.Context) ([]clientlogo.Logo, error) {
			return []clientlogo.Logo{{ID: 1, Name: "Infosys", Category: "Technology"}}, nil
		},
		industryFn: func(context.Context, string) ([]clientlogo.Logo, error) {
			called = true
			return nil, nil
		},
	}
	h := newPageHandler(t, handler.PageDeps{Logos: logos})
	w := httptest.NewRecorder()

	h.Clients(w, httptest.NewRequest(http.MethodGet, "/clients?industry=Retail", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, called)
	assert.Contains(t, w.Body.String(), "Infosys")
}

func TestPageHandler_LandingUsesMetaTitle(t *testing.T) {
	page := landing.Page{
		ID: 1, Title: "Corporate Offsites", Slug: "corporate-offsites",
		MetaTitle: "Corporate Offsites in Bangalore", MetaDescription: "Plan a two day offsite.",
		HeroTitle: "Offsites that work", CTAText: "Plan my offsite",
	}
	landings := &mockLandings{getFn: func(context.Context, string) (*landing.Page, error) { return &page, nil }}
	h := newPageHandler(t, handler.PageDeps{Landings: landings})
	w := httptest.NewRecorder()

	h.Landing(w, slugRequest("/landing/corporate-offsites", "corporate-offsites"))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<title>Corporate Offsites in Bangalore</title>")
	assert.Contains(t, body, `content="Plan a two day offsite."`)
	assert.Contains(t, body, `data-source="landing-corporate-offsites"`)
	assert.Contains(t, body, "Plan my offsite")
}

func TestPageHandler_LandingNotFound(t *testing.T) {
	h := newPageHandler(t, handler.PageDeps{})
	w := httptest.NewRecorder()

	h.Landing(w, slugRequest("/landing/missing", "missing"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPageHandler_Careers(t *testing.T) {
	h := newPageHandler(t, handler.PageDeps{})
	w := httptest.NewRecorder()

	h.Careers(w, httptest.NewRequest(http.MethodGet, "/careers", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, len(handler.Openings), strings.Count(body, `"@type":"JobPosting"`))
	assert.Contains(t, body, handler.Openings[0].Title)
}

func TestPageHandler_StaticPages(t *testing.T) {
	h := newPageHandler(t, handler.PageDeps{})

	tests := []struct {
		name    string
		path    string
		fn      http.HandlerFunc
		noIndex bool
		want    string
	}{
		{name: "contact", path: "/contact", fn: h.Contact, want: `"@type":"EventVenue"`},
		{name: "about", path: "/about", fn: h.About, want: `"@type":"Organization"`},
		{name: "thank you", path: "/thank-you", fn: h.ThankYou, noIndex: true, want: "Thank you!"},
		{name: "feedback", path: "/feedback", fn: h.Feedback, noIndex: true, want: `data-form-type="feedback"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			tt.fn(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, tt.want)
			if tt.noIndex {
				assert.Contains(t, body, `content="noindex, nofollow"`)
			} else {
				assert.Contains(t, body, `content="index, follow"`)
			}
		})
	}
}

func TestPageHandler_NotFound(t *testing.T) {
	h := newPageHandler(t, handler.PageDeps{})
	w := httptest.NewRecorder()

	h.NotFound(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")
}
