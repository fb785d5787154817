package api

import (
	"context"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"

	"github.com/whitemassif/website/internal/api/handler"
	"github.com/whitemassif/website/internal/api/middleware"
	"github.com/whitemassif/website/internal/audit"
	"github.com/whitemassif/website/internal/sitemap"
)

// SitemapCache serves and rebuilds the sitemap snapshot.
type SitemapCache interface {
	XML(ctx context.Context) ([]byte, error)
	Refresh(ctx context.Context) (int, error)
	Status() sitemap.Status
}

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	CMSPinger     handler.Pinger
	DBPinger      handler.Pinger
	Version       string
	OpenAPISpec   []byte
	SiteURL       string
	Forms         handler.Submitter
	Recorder      handler.EventRecorder
	Events        audit.Repository
	Sitemap       SitemapCache
	Authenticator middleware.Authenticator
	Pages         handler.PageDeps
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.CMSPinger, deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec)
		r.Get("/openapi.json", openapiHandler.JSON)
		r.Get("/openapi.yaml", openapiHandler.YAML)
	}

	if deps.Sitemap != nil {
		seoHandler := handler.NewSEOHandler(deps.Sitemap, deps.SiteURL)
		r.Get("/sitemap.xml", seoHandler.Sitemap)
		r.Get("/robots.txt", seoHandler.Robots)
	}

	if deps.Forms != nil {
		formHandler := handler.NewFormHandler(deps.Forms, deps.Recorder)
		r.Post("/api/submit-form", formHandler.Submit)
		r.Get("/api/submit-form", formHandler.MethodNotAllowed)
		r.Put("/api/submit-form", formHandler.MethodNotAllowed)
		r.Patch("/api/submit-form", formHandler.MethodNotAllowed)
		r.Delete("/api/submit-form", formHandler.MethodNotAllowed)
	}

	if deps.Pages.Logos != nil {
		clientsHandler := handler.NewClientsHandler(deps.Pages.Logos, deps.Pages.Assets)
		r.Get("/api/clients", clientsHandler.List)
	}

	if deps.Authenticator != nil && deps.Sitemap != nil && deps.Events != nil {
		operatorHandler := handler.NewOperatorHandler(deps.Sitemap, deps.Events)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.Authenticator))
			r.Post("/api/revalidate", operatorHandler.Revalidate)
			r.Get("/api/submissions", operatorHandler.Submissions)
		})
	}

	if deps.Pages.Renderer != nil {
		pages := handler.NewPageHandler(deps.Pages)
		r.Get("/", pages.Home)
		r.Get("/about", pages.About)
		r.Get("/blog", pages.BlogList)
		r.Get("/blog/{slug}", pages.BlogPost)
		r.Get("/services", pages.Services)
		r.Get("/services/{slug}", pages.Service)
		r.Get("/portfolio", pages.Portfolio)
		r.Get("/work", pages.Work)
		r.Get("/team", pages.Team)
		r.Get("/clients", pages.Clients)
		r.Get("/careers", pages.Careers)
		r.Get("/landing/{slug}", pages.Landing)
		r.Get("/contact", pages.Contact)
		r.Get("/thank-you", pages.ThankYou)
		r.Get("/feedback", pages.Feedback)
		r.NotFound(pages.NotFound)
	}

	return r
}
