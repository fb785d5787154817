package handler

import (
	"net/http"
	"strconv"

	"github.com/whitemassif/website/internal/api/validation"
	"github.com/whitemassif/website/internal/portfolio"
	"github.com/whitemassif/website/internal/seo"
)

type projectView struct {
	Project  portfolio.Project
	Category string
	Image    string
	Gallery  []string
}

type portfolioView struct {
	Categories []portfolio.CategoryCount
	Selected   string
	Projects   []projectView
}

// Portfolio handles GET /portfolio?category=.
func (h *PageHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	projects, err := h.deps.Projects.ListPublished(r.Context())
	logReadError(r.Context(), "portfolio_projects", err)

	selected := r.URL.Query().Get("category")
	if !validation.ValidSlug(selected) {
		selected = portfolio.AllCategories
	}

	view := portfolioView{
		Categories: portfolio.Categories(projects),
		Selected:   selected,
		Projects:   h.projectViews(portfolio.FilterByCategory(projects, selected)),
	}

	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       "Event Portfolio" + titleSuffix,
		Description: "Corporate events, celebrations, awards ceremonies and summits produced by White Massif.",
		Path:        "/portfolio",
		Images:      nonEmpty(firstImage(view.Projects)),
	})
	h.render(w, r, http.StatusOK, "portfolio", meta, view,
		h.deps.Site.Breadcrumbs([]seo.Crumb{{Name: "Home", Path: "/"}, {Name: "Portfolio", Path: "/portfolio"}}))
}

type videoView struct {
	Title   string
	Project string
	URL     string
}

type workView struct {
	Years    []int
	Year     int
	Heroes   []projectView
	Projects []projectView
	Videos   []videoView
}

// Work handles GET /work?year=.
func (h *PageHandler) Work(w http.ResponseWriter, r *http.Request) {
	projects, err := h.deps.Projects.ListPublished(r.Context())
	logReadError(r.Context(), "portfolio_projects", err)

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 0 {
		year = 0
	}

	all := h.projectViews(projects)
	view := workView{
		Years:    portfolio.Years(projects),
		Year:     year,
		Projects: h.projectViews(portfolio.FilterByYear(projects, year)),
	}
	for _, p := range all {
		if p.Image != "" {
			view.Heroes = append(view.Heroes, p)
		}
	}
	for _, v := range portfolio.Videos {
		view.Videos = append(view.Videos, videoView{
			Title:   v.Title,
			Project: v.Project,
			URL:     h.deps.Assets.AssetURL(v.File, ""),
		})
	}

	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       "Our Work" + titleSuffix,
		Description: "Photos and films from White Massif corporate events across India.",
		Path:        "/work",
		Images:      nonEmpty(firstImage(view.Heroes)),
	})
	h.render(w, r, http.StatusOK, "work", meta, view,
		h.deps.Site.Breadcrumbs([]seo.Crumb{{Name: "Home", Path: "/"}, {Name: "Work", Path: "/work"}}))
}

func (h *PageHandler) projectViews(projects []portfolio.Project) []projectView {
	out := make([]projectView, len(projects))
	for i, p := range projects {
		ids := make([]string, 0, len(p.Gallery))
		for _, g := range p.Gallery {
			ids = append(ids, g.ID)
		}
		out[i] = projectView{
			Project:  p,
			Category: p.CategoryName(),
			Image:    h.deps.Assets.AssetURL(p.HeroImage(), ""),
			Gallery:  h.deps.Assets.AssetURLs(ids, ""),
		}
	}
	return out
}

func firstImage(projects []projectView) string {
	for _, p := range projects {
		if p.Image != "" {
			return p.Image
		}
	}
	return ""
}
