package handler

import (
	"net/http"
	"time"

	"github.com/whitemassif/website/internal/seo"
)

// Opening is an open position listed on the careers page.
type Opening struct {
	Title        string
	Role         string
	Experience   string
	Description  string
	Requirements []string
	Salary       seo.Salary
}

// Openings are the positions currently advertised.
var Openings = []Opening{
	{
		Title:       "Senior Event Manager",
		Role:        "Event Management",
		Experience:  "3-5 years",
		Description: "Lead Fortune 500 events from brief to show day and turn ambitious client visions into flawless experiences.",
		Requirements: []string{
			"Proven track record of delivering large corporate events",
			"3+ years managing client-facing event projects",
			"Calm, creative problem solving under pressure",
			"Ability to inspire teams and clients alike",
		},
		Salary: seo.Salary{Currency: "INR", Min: 600000, Max: 1000000},
	},
	{
		Title:       "Creative Designer",
		Role:        "Creative",
		Experience:  "2-4 years",
		Description: "Design stages, venues and brand moments that turn spaces into emotional journeys.",
		Requirements: []string{
			"Portfolio of event, spatial or brand design",
			"Fluency with 2D and 3D design tools",
			"Eye for detail across print, digital and stage",
		},
		Salary: seo.Salary{Currency: "INR", Min: 400000, Max: 700000},
	},
	{
		Title:       "Client Relations Executive",
		Role:        "Client Services",
		Experience:  "1-3 years",
		Description: "Be the bridge between client goals and the production team, and grow one-time clients into long-term partners.",
		Requirements: []string{
			"Excellent written and spoken communication",
			"Experience in account management or client servicing",
		},
		Salary: seo.Salary{Currency: "INR", Min: 300000, Max: 500000},
	},
	{
		Title:       "Production Coordinator",
		Role:        "Production",
		Experience:  "2-4 years",
		Description: "Coordinate vendors, technical crews and timelines so complex productions run on schedule.",
		Requirements: []string{
			"Hands-on event production experience",
			"Strong vendor and logistics management",
		},
		Salary: seo.Salary{Currency: "INR", Min: 400000, Max: 600000},
	},
}

type careersView struct {
	Openings []Opening
	Email    string
}

// Careers handles GET /careers.
func (h *PageHandler) Careers(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	schemas := []seo.Schema{h.deps.Site.Breadcrumbs([]seo.Crumb{{Name: "Home", Path: "/"}, {Name: "Careers", Path: "/careers"}})}
	for _, o := range Openings {
		salary := o.Salary
		schemas = append(schemas, h.deps.Site.JobPosting(seo.JobInfo{
			Title:       o.Title,
			Description: o.Description,
			DatePosted:  now.Format("2006-01-02"),
			Salary:      &salary,
			Location:    "Bangalore",
		}, now))
	}

	meta := h.deps.Site.PageMetadata(seo.PageInput{
		Title:       "Careers" + titleSuffix,
		Description: "Join White Massif in Bangalore. Open roles in event management, design, client relations and production.",
		Path:        "/careers",
	})
	h.render(w, r, http.StatusOK, "careers", meta, careersView{Openings: Openings, Email: h.deps.Site.Company.Email}, schemas...)
}
