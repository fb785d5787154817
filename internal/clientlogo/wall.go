package clientlogo

import (
	"sort"
	"strings"
)

// PageSize is the number of logos per page of the all-clients modal.
const PageSize = 24

// Group is one industry section of the logo wall.
type Group struct {
	Category string
	Logos    []Logo
}

// Page is one slice of a filtered logo list.
type Page struct {
	Items   []Logo `json:"items"`
	Total   int    `json:"total"`
	Page    int    `json:"page"`
	HasMore bool   `json:"hasMore"`
}

// GroupByIndustry buckets logos by category. Groups are sorted by category
// and keep the input order within each group. Logos without a category are
// grouped under "Other".
func GroupByIndustry(logos []Logo) []Group {
	idx := map[string]int{}
	var groups []Group
	for _, l := range logos {
		category := strings.TrimSpace(l.Category)
		if category == "" {
			category = "Other"
		}
		i, ok := idx[category]
		if !ok {
			i = len(groups)
			idx[category] = i
			groups = append(groups, Group{Category: category})
		}
		groups[i].Logos = append(groups[i].Logos, l)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Category < groups[b].Category
	})
	return groups
}

// Filter keeps the logos whose name or category contains term, ignoring case.
// An empty term keeps everything.
func Filter(logos []Logo, term string) []Logo {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return logos
	}
	out := []Logo{}
	for _, l := range logos {
		if strings.Contains(strings.ToLower(l.Name), term) || strings.Contains(strings.ToLower(l.Category), term) {
			out = append(out, l)
		}
	}
	return out
}

// Paginate filters logos by term and returns the 1-based page of PageSize items.
// Pages below 1 are treated as 1; pages past the end are empty.
func Paginate(logos []Logo, term string, page int) Page {
	if page < 1 {
		page = 1
	}
	filtered := Filter(logos, term)

	start := len(filtered)
	if page-1 <= len(filtered)/PageSize {
		start = min((page-1)*PageSize, len(filtered))
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]Logo, end-start)
	copy(items, filtered[start:end])
	return Page{
		Items:   items,
		Total:   len(filtered),
		Page:    page,
		HasMore: end < len(filtered),
	}
}

const fallbackBase = "https://qkzwdwhnbzrlyijluxdg.supabase.co/storage/v1/object/public/massif/clients/"

var fallbackLogos = map[string]string{
	"Microsoft":           "Microsoft.webp",
	"Amazon Web Services": "Amazon-Web-services.webp",
	"GSK":                 "GSK-1.png",
	"Coca-Cola":           "Coca-cola-1.png",
	"Ericsson":            "Ericsson.webp",
	"Hitachi":             "Hitachi.png",
	"TVS":                 "TVS.png",
	"The New York Times":  "The-new-york-times-1.png",
	"KLM":                 "KLM-1.png",
	"ABB":                 "ABB.png",
	"EMC":                 "EMC.webp",
	"NetApp":              "Netapp.webp",
	"Envestnet Yodlee":    "Envestnet-Yodlee.webp",
	"Microchip":           "Microchip.webp",
	"Tekion":              "Tekion.png",
}

// FallbackLogoURL returns the hosted logo of a well-known client, or "".
func FallbackLogoURL(clientName string) string {
	file, ok := fallbackLogos[clientName]
	if !ok {
		return ""
	}
	return fallbackBase + file
}

// AssetResolver turns a CMS file id into a public URL.
type AssetResolver interface {
	AssetURL(id, key string) string
}

// BestLogoURL prefers the CMS-hosted logo and falls back to FallbackLogoURL.
func BestLogoURL(assets AssetResolver, l Logo) string {
	if l.Logo != "" {
		return assets.AssetURL(l.Logo, "")
	}
	return FallbackLogoURL(l.Name)
}
