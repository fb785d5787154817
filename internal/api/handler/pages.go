package handler

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/whitemassif/website/internal/api/validation"
	"github.com/whitemassif/website/internal/blog"
	"github.com/whitemassif/website/internal/clientlogo"
	"github.com/whitemassif/website/internal/form"
	"github.com/whitemassif/website/internal/landing"
	"github.com/whitemassif/website/internal/offering"
	"github.com/whitemassif/website/internal/portfolio"
	"github.com/whitemassif/website/internal/seo"
	"github.com/whitemassif/website/internal/team"
	"github.com/whitemassif/website/internal/web"
)

const (
	homePostCount    = 3
	homeServiceCount = 6
	blogListLimit    = 50
	relatedCount     = 3
	titleSuffix      = " | White Massif"
)

// Assets resolves CMS file ids to public URLs.
type Assets interface {
	AssetURL(id, key string) string
	AssetURLs(ids []string, key string) []string
}

// PageDeps holds the content sources of the HTML pages.
type PageDeps struct {
	Posts    blog.Repository
	Services offering.Repository
	Team     team.Repository
	Landings landing.Repository
	Logos    clientlogo.Repository
	Projects portfolio.Repository
	Assets   Assets
	Site     *seo.Site
	Renderer *web.Renderer
}

// PageHandler renders the public HTML pages. CMS read failures are logged
// and render the page's empty state.
type PageHandler struct {
	deps PageDeps
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(deps PageDeps) *PageHandler {
	return &PageHandler{deps: deps}
}

type homeView struct {
	Location    seo.Location
	Posts       []blog.Post
	Services    []offering.Service
	ClientCount int
	FAQs        []seo.FAQ
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := seo.LocationContent("Bangalore", "Karnataka")

	view := homeView{Location: loc, FAQs: seo.CommonFAQs}

	posts, err := h.deps.Posts.ListPublished(ctx, homePostCount)
	logReadError(ctx, "blog", err)
	view.Posts = posts

	services, err := h.deps.Services.ListActive(ctx)
	logReadError(ctx, "services", err)
	if len(services) > homeServiceCount {
		services = services[:homeServiceCount]
	}
	view.Services = services

	count, err := h.deps.Logos.Count(ctx)
	logReadError(ctx, "client_logos", err)
	view.ClientCount = count

	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       loc.Title + titleSuffix,
		Description: loc.Description,
		Keywords:    loc.Keywords,
	})
	h.render(w, r, http.StatusOK, "home", meta, view,
		h.deps.Site.Organization(), h.deps.Site.LocalBusiness(), h.deps.Site.WebSite(), h.deps.Site.FAQPage(seo.CommonFAQs))
}

type blogListView struct {
	Posts []blog.Post
}

// BlogList handles GET /blog.
func (h *PageHandler) BlogList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.deps.Posts.ListPublished(r.Context(), blogListLimit)
	logReadError(r.Context(), "blog", err)

	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       "Event Management Blog" + titleSuffix,
		Description: "Corporate event ideas, seasonal themes and planning insights from the White Massif team in Bangalore.",
		Path:        "/blog",
	})
	h.render(w, r, http.StatusOK, "blog_list", meta, blogListView{Posts: posts},
		h.deps.Site.Breadcrumbs([]seo.Crumb{{Name: "Home", Path: "/"}, {Name: "Blog", Path: "/blog"}}))
}

type blogPostView struct {
	Post    blog.Post
	Image   string
	Related []blog.Post
}

// BlogPost handles GET /blog/{slug}.
func (h *PageHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	if !validation.ValidSlug(slug) {
		h.NotFoundPage(w, r, "Post Not Found")
		return
	}

	post, err := h.deps.Posts.GetBySlug(ctx, slug)
	if err != nil {
		h.missing(w, r, err, blog.ErrPostNotFound, "Post Not Found")
		return
	}

	recent, err := h.deps.Posts.ListPublished(ctx, relatedCount+1)
	logReadError(ctx, "blog", err)
	related := make([]blog.Post, 0, relatedCount)
	for _, p := range recent {
		if p.ID != post.ID && len(related) < relatedCount {
			related = append(related, p)
		}
	}

	path := "/blog/" + post.Slug
	image := h.deps.Assets.AssetURL(post.FeaturedImage, "")
	published := ""
	if t := post.PublishedAt(); !t.IsZero() {
		published = t.Format("2006-01-02")
	}

	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       seo.MetaTitle(post.Title + titleSuffix),
		Description: seo.MetaDescription(firstNonEmpty(post.Excerpt, post.Content), post.Title),
		Keywords:    post.Tags,
		Path:        path,
		Images:      nonEmpty(image),
		Type:        "article",
	})
	article := h.deps.Site.Article(seo.ArticleInfo{
		Title:       post.Title,
		Description: post.Excerpt,
		Content:     seo.PlainText(post.Content),
		Author:      firstNonEmpty(post.Author, h.deps.Site.Company.Name),
		PublishDate: published,
		Image:       image,
		URL:         h.deps.Site.URL(path),
		Keywords:    post.Tags,
	})
	crumbs := h.deps.Site.Breadcrumbs([]seo.Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Blog", Path: "/blog"},
		{Name: post.Title, Path: path},
	})
	h.render(w, r, http.StatusOK, "blog_post", meta, blogPostView{Post: *post, Image: image, Related: related}, article, crumbs)
}

type serviceCategory struct {
	Name     string
	Services []offering.Service
}

type servicesView struct {
	Filters    []string
	Selected   string
	Categories []serviceCategory
}

// Services handles GET /services?category=. Unknown categories show every
// service.
func (h *PageHandler) Services(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	services, err := h.deps.Services.ListActive(ctx)
	logReadError(ctx, "services", err)

	view := servicesView{}
	for _, s := range services {
		if s.Category != "" && !slices.Contains(view.Filters, s.Category) {
			view.Filters = append(view.Filters, s.Category)
		}
	}
	if selected := r.URL.Query().Get("category"); selected != "" && slices.Contains(view.Filters, selected) {
		view.Selected = selected
		services, err = h.deps.Services.ListByCategory(ctx, selected)
		logReadError(ctx, "services", err)
	}
	view.Categories = groupServices(services)

	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       "Corporate Event Management Services" + titleSuffix,
		Description: "Business events, team building, product launches and end-to-end event production in Bangalore and across India.",
		Path:        "/services",
	})
	h.render(w, r, http.StatusOK, "services", meta, view,
		h.deps.Site.Breadcrumbs([]seo.Crumb{{Name: "Home", Path: "/"}, {Name: "Services", Path: "/services"}}))
}

type serviceView struct {
	Service offering.Service
	Image   string
	Gallery []string
	Related []offering.Service
}

// Service handles GET /services/{slug}.
func (h *PageHandler) Service(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	if !validation.ValidSlug(slug) {
		h.NotFoundPage(w, r, "Service Not Found")
		return
	}

	svc, err := h.deps.Services.GetBySlug(ctx, slug)
	if err != nil {
		h.missing(w, r, err, offering.ErrServiceNotFound, "Service Not Found")
		return
	}

	all, err := h.deps.Services.ListActive(ctx)
	logReadError(ctx, "services", err)

	path := "/services/" + svc.Slug
	image := h.deps.Assets.AssetURL(svc.FeaturedImage, "")
	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       seo.MetaTitle(svc.Title + titleSuffix),
		Description: seo.MetaDescription(firstNonEmpty(svc.Description, svc.Content), svc.Title),
		Path:        path,
		Images:      nonEmpty(image),
	})
	schema := h.deps.Site.Service(seo.ServiceInfo{
		Name:        svc.Title,
		Description: svc.Description,
		Image:       image,
		ServiceType: svc.Category,
	})
	crumbs := h.deps.Site.Breadcrumbs([]seo.Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Services", Path: "/services"},
		{Name: svc.Title, Path: path},
	})
	h.render(w, r, http.StatusOK, "service", meta, serviceView{
		Service: *svc,
		Image:   image,
		Gallery: h.deps.Assets.AssetURLs(svc.Gallery, ""),
		Related: offering.Related(all, *svc, relatedCount),
	}, schema, crumbs)
}

type memberView struct {
	Member team.Member
	Image  string
}

type teamSection struct {
	Name    string
	Members []memberView
}

type teamView struct {
	Sections []teamSection
	Stats    team.Stats
}

// Team handles GET /team.
func (h *PageHandler) Team(w http.ResponseWriter, r *http.Request) {
	members, err := h.deps.Team.ListActive(r.Context())
	logReadError(r.Context(), "team_members", err)

	s := team.Organize(members)
	view := teamView{
		Sections: []teamSection{
			{Name: team.DepartmentLeadership, Members: h.memberViews(s.Leadership)},
			{Name: team.DepartmentCreative, Members: h.memberViews(s.Creative)},
			{Name: team.DepartmentClientServices, Members: h.memberViews(s.ClientServices)},
			{Name: team.DepartmentProduction, Members: h.memberViews(s.Production)},
			{Name: team.DepartmentOperations, Members: h.memberViews(s.Operations)},
			{Name: team.DepartmentStrategy, Members: h.memberViews(s.Strategy)},
		},
		Stats: team.ComputeStats(members),
	}
	if view.Stats.TotalMembers == 0 {
		view.Sections = nil
	}

	schemas := []seo.Schema{h.deps.Site.Breadcrumbs([]seo.Crumb{{Name: "Home", Path: "/"}, {Name: "Team", Path: "/team"}})}
	for _, m := range s.Leadership {
		schemas = append(schemas, h.deps.Site.Person(seo.PersonInfo{
			Name:        m.Name,
			JobTitle:    m.Position,
			Description: m.Bio,
			Image:       h.deps.Assets.AssetURL(m.Image, ""),
			Email:       m.Email,
		}))
	}

	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       "Our Team" + titleSuffix,
		Description: "Meet the event managers, designers and producers behind White Massif's corporate events.",
		Path:        "/team",
	})
	h.render(w, r, http.StatusOK, "team", meta, view, schemas...)
}

func (h *PageHandler) memberViews(members []team.Member) []memberView {
	out := make([]memberView, len(members))
	for i, m := range members {
		out[i] = memberView{Member: m, Image: h.deps.Assets.AssetURL(m.Image, "")}
	}
	return out
}

type logoView struct {
	Name string
	URL  string
}

type logoGroup struct {
	Category string
	Logos    []logoView
}

type clientsView struct {
	Industries []clientlogo.Industry
	Selected   string
	Groups     []logoGroup
}

// Clients handles GET /clients?industry=. Unknown industries show the whole
// wall.
func (h *PageHandler) Clients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	industries, err := h.deps.Logos.Industries(ctx)
	logReadError(ctx, "client_logos", err)

	selected := r.URL.Query().Get("industry")
	if !slices.ContainsFunc(industries, func(i clientlogo.Industry) bool { return i.Category == selected }) {
		selected = ""
	}

	var logos []clientlogo.Logo
	if selected != "" {
		logos, err = h.deps.Logos.ListByIndustry(ctx, selected)
	} else {
		logos, err = h.deps.Logos.List(ctx)
	}
	logReadError(ctx, "client_logos", err)

	view := clientsView{Industries: industries, Selected: selected}
	for _, g := range clientlogo.GroupByIndustry(logos) {
		lg := logoGroup{Category: g.Category}
		for _, l := range g.Logos {
			lg.Logos = append(lg.Logos, logoView{Name: l.Name, URL: clientlogo.BestLogoURL(h.deps.Assets, l)})
		}
		view.Groups = append(view.Groups, lg)
	}

	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       "Our Clients" + titleSuffix,
		Description: "Fortune 500 companies and leading Indian brands trust White Massif with their corporate events.",
		Path:        "/clients",
	})
	h.render(w, r, http.StatusOK, "clients", meta, view,
		h.deps.Site.Breadcrumbs([]seo.Crumb{{Name: "Home", Path: "/"}, {Name: "Clients", Path: "/clients"}}))
}

type landingView struct {
	Page      landing.Page
	HeroImage string
}

// Landing handles GET /landing/{slug}.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !validation.ValidSlug(slug) {
		h.NotFoundPage(w, r, "Page Not Found")
		return
	}

	page, err := h.deps.Landings.GetBySlug(r.Context(), slug)
	if err != nil {
		h.missing(w, r, err, landing.ErrPageNotFound, "Page Not Found")
		return
	}

	image := h.deps.Assets.AssetURL(page.HeroImage, "")
	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       firstNonEmpty(page.MetaTitle, seo.MetaTitle(page.Title)),
		Description: firstNonEmpty(page.MetaDescription, seo.MetaDescription(page.Content, page.Title)),
		Path:        "/landing/" + page.Slug,
		Images:      nonEmpty(image),
	})
	h.render(w, r, http.StatusOK, "landing", meta, landingView{Page: *page, HeroImage: image},
		h.deps.Site.Organization())
}

type contactView struct {
	Company seo.Company
}

// Contact handles GET /contact.
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       "Contact Us" + titleSuffix,
		Description: "Plan your next corporate event with White Massif. Call, email or send us your event brief.",
		Path:        "/contact",
	})
	h.render(w, r, http.StatusOK, "contact", meta, contactView{Company: h.deps.Site.Company},
		h.deps.Site.LocalBusiness())
}

// ThankYou handles GET /thank-you.
func (h *PageHandler) ThankYou(w http.ResponseWriter, r *http.Request) {
	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       "Thank You" + titleSuffix,
		Description: "Thank you for contacting White Massif.",
		Path:        "/thank-you",
		NoIndex:     true,
	})
	h.render(w, r, http.StatusOK, "thank_you", meta, nil)
}

type feedbackView struct {
	Email   string
	Ratings []int
}

// Feedback handles GET /feedback.
func (h *PageHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       "Feedback" + titleSuffix,
		Description: "Tell White Massif how your event went.",
		Path:        "/feedback",
		NoIndex:     true,
	})
	h.render(w, r, http.StatusOK, "feedback", meta, feedbackView{
		Email:   form.DefaultFeedbackEmail,
		Ratings: []int{5, 4, 3, 2, 1},
	})
}

// NotFound handles unmatched routes.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.NotFoundPage(w, r, "Page Not Found")
}

// NotFoundPage renders the 404 page with the given heading.
func (h *PageHandler) NotFoundPage(w http.ResponseWriter, r *http.Request, heading string) {
	meta := h.deps.Site.PageMetadata(seo.PageInput{Title: heading + titleSuffix, Path: r.URL.Path, NoIndex: true})
	h.render(w, r, http.StatusNotFound, "not_found", meta, heading)
}

// missing renders 404 for notFound and 503 for any other lookup error.
func (h *PageHandler) missing(w http.ResponseWriter, r *http.Request, err, notFound error, heading string) {
	if errors.Is(err, notFound) {
		h.NotFoundPage(w, r, heading)
		return
	}
	slog.Error("cms lookup failed", "error", err, "path", r.URL.Path)
	meta := h.deps.Site.PageMetadata(seo.PageInput{Title: "Temporarily Unavailable" + titleSuffix, Path: r.URL.Path, NoIndex: true})
	h.render(w, r, http.StatusServiceUnavailable, "not_found", meta, "Temporarily Unavailable")
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, meta seo.Metadata, data any, schemas ...seo.Schema) {
	var jsonld template.HTML
	if len(schemas) > 0 {
		var err error
		if jsonld, err = seo.RenderJSONLD(schemas...); err != nil {
			slog.Error("encoding structured data failed", "error", err, "path", r.URL.Path)
		}
	}
	h.deps.Renderer.Render(w, status, name, web.NewPage(meta, jsonld, data))
}

func groupServices(services []offering.Service) []serviceCategory {
	idx := map[string]int{}
	var out []serviceCategory
	for _, s := range services {
		name := firstNonEmpty(s.Category, "Other Services")
		i, ok := idx[name]
		if !ok {
			i = len(out)
			idx[name] = i
			out = append(out, serviceCategory{Name: name})
		}
		out[i].Services = append(out[i].Services, s)
	}
	return out
}

func logReadError(ctx context.Context, collection string, err error) {
	if err != nil {
		slog.ErrorContext(ctx, "cms read failed, rendering empty state", "collection", collection, "error", err)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

type aboutView struct {
	Company seo.Company
	Stats   team.Stats
}

// About handles GET /about.
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	members, err := h.deps.Team.ListActive(r.Context())
	logReadError(r.Context(), "team_members", err)

	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       "About Us" + titleSuffix,
		Description: h.deps.Site.Company.Description,
		Path:        "/about",
	})
	h.render(w, r, http.StatusOK, "about", meta, aboutView{Company: h.deps.Site.Company, Stats: team.ComputeStats(members)},
		h.deps.Site.Organization(),
		h.deps.Site.Breadcrumbs([]seo.Crumb{{Name: "Home", Path: "/"}, {Name: "About", Path: "/about"}}))
}
