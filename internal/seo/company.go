// Package seo builds search-engine metadata for the site: schema.org JSON-LD
// documents, per-page head metadata, and the robots policy.
package seo

import "strings"

// DefaultSiteURL is the public origin of the production site.
const DefaultSiteURL = "https://whitemassif.com"

// GoogleSiteVerification is the Search Console ownership token.
const GoogleSiteVerification = "pHX0F5J-O1NzC0IdjnmN3RgKaspBaSc2c5N4Zr8T5co"

// Address is a postal address in schema.org PostalAddress terms.
type Address struct {
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressCountry  string `json:"addressCountry"`
}

// Geo holds coordinates as decimal strings.
type Geo struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Keywords groups the search phrases the site targets.
type Keywords struct {
	Primary   []string
	Secondary []string
	Local     []string
}

// Company is the organisation profile every generator draws from.
type Company struct {
	Name               string
	LegalName          string
	URL                string
	Logo               string
	Description        string
	FoundingDate       string
	Founders           []string
	Email              string
	Phone              string
	Address            Address
	Geo                Geo
	OpeningHours       string
	PriceRange         string
	CurrenciesAccepted string
	PaymentAccepted    string
	AreaServed         []string
	SocialProfiles     []string
	ServiceTypes       []string
	Keywords           Keywords
}

// DefaultCompany returns the White Massif profile. Each call returns fresh
// slices so callers may modify the result.
func DefaultCompany() Company {
	return Company{
		Name:         "White Massif Event Management",
		LegalName:    "White Massif Event Management Private Limited",
		URL:          DefaultSiteURL,
		Logo:         DefaultSiteURL + "/WM%20LOGO-01.png",
		Description:  "Premier corporate event management company in India specializing in high-impact corporate events, conferences, team building activities, and brand experiences across Bangalore, Mumbai, Delhi, Chennai, Hyderabad, and Pune.",
		FoundingDate: "2015",
		Founders:     []string{"Harsha", "Team White Massif"},
		Email:        "info@whitemassif.com",
		Phone:        "+91-80-4123-4567",
		Address: Address{
			StreetAddress:   "HSR Layout",
			AddressLocality: "Bangalore",
			AddressRegion:   "Karnataka",
			PostalCode:      "560102",
			AddressCountry:  "IN",
		},
		Geo:                Geo{Latitude: "12.9121", Longitude: "77.6446"},
		OpeningHours:       "Mo-Fr 09:00-18:00, Sa 09:00-14:00",
		PriceRange:         "₹₹₹",
		CurrenciesAccepted: "INR",
		PaymentAccepted:    "Cash, Credit Card, UPI, Bank Transfer",
		AreaServed: []string{
			"Bangalore", "Mumbai", "Delhi", "Chennai", "Hyderabad", "Pune",
			"Kolkata", "Ahmedabad", "Gurgaon", "Noida", "India", "Karnataka",
		},
		SocialProfiles: []string{
			"https://www.linkedin.com/company/white-massif",
			"https://www.instagram.com/whitemassif",
			"https://www.facebook.com/whitemassif",
			"https://www.youtube.com/@whitemassif",
		},
		ServiceTypes: []string{
			"Corporate Events",
			"Product Launches",
			"Annual Day Celebrations",
			"Team Building Activities",
			"Conference Management",
			"Award Ceremonies",
			"Brand Activation",
			"Employee Engagement Programs",
			"Virtual Events",
			"Hybrid Events",
		},
		Keywords: Keywords{
			Primary: []string{
				"corporate event management company in Bangalore",
				"event management companies in India",
				"corporate event planners Bangalore",
				"best event management company Karnataka",
				"corporate event organizers India",
			},
			Secondary: []string{
				"team building activities Bangalore",
				"product launch event management",
				"annual day celebration organizers",
				"conference management services India",
				"employee engagement event planners",
				"virtual event management India",
				"hybrid event solutions Bangalore",
			},
			Local: []string{
				"event management HSR Layout",
				"corporate events Koramangala",
				"event planners Indiranagar",
				"Whitefield event management",
				"Electronic City corporate events",
			},
		},
	}
}

// Site generates metadata for one deployment of the site.
type Site struct {
	Company Company
}

// New returns a Site for the default company profile served at siteURL.
// An empty siteURL keeps the production origin.
func New(siteURL string) *Site {
	c := DefaultCompany()
	if u := strings.TrimRight(strings.TrimSpace(siteURL), "/"); u != "" {
		c.URL = u
	}
	return &Site{Company: c}
}

// URL joins path onto the site origin.
func (s *Site) URL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.Company.URL + path
}
