package seo

import (
	"strings"
	"time"
)

const schemaContext = "https://schema.org"

// Schema is one JSON-LD document.
type Schema map[string]any

// ServiceInfo describes an offered service.
type ServiceInfo struct {
	Name        string
	Description string
	Image       string
	Provider    string
	ServiceType string
	AreaServed  []string
}

// ArticleInfo describes a blog post.
type ArticleInfo struct {
	Title        string
	Description  string
	Content      string
	Author       string
	PublishDate  string
	ModifiedDate string
	Image        string
	URL          string
	Keywords     []string
}

// EventInfo describes a past or upcoming event.
type EventInfo struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
	Location    string
	Image       string
	Organizer   string
}

// Crumb is one breadcrumb step; Path is relative to the site origin.
type Crumb struct {
	Name string
	Path string
}

// FAQ is a question and its answer.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PersonInfo describes a team member.
type PersonInfo struct {
	Name        string
	JobTitle    string
	Description string
	Image       string
	Email       string
	Telephone   string
}

// Salary is an annual pay range.
type Salary struct {
	Currency string
	Min      float64
	Max      float64
}

// JobInfo describes an open position.
type JobInfo struct {
	Title          string
	Description    string
	DatePosted     string
	ValidThrough   string
	EmploymentType string
	Salary         *Salary
	Location       string
}

const (
	articleBodyLimit = 1000
	jobPostingTTL    = 90 * 24 * time.Hour
)

// Organization returns the Organization document for the company.
func (s *Site) Organization() Schema {
	c := s.Company
	founders := make([]map[string]any, 0, len(c.Founders))
	for _, f := range c.Founders {
		founders = append(founders, map[string]any{"@type": "Person", "name": f})
	}
	return Schema{
		"@context":     schemaContext,
		"@type":        "Organization",
		"@id":          c.URL + "/#organization",
		"name":         c.Name,
		"legalName":    c.LegalName,
		"url":          c.URL,
		"logo":         map[string]any{"@type": "ImageObject", "url": c.Logo, "width": "200", "height": "60"},
		"description":  c.Description,
		"foundingDate": c.FoundingDate,
		"founder":      founders,
		"address":      postalAddress(c.Address),
		"contactPoint": []map[string]any{
			{
				"@type":             "ContactPoint",
				"telephone":         c.Phone,
				"contactType":       "sales",
				"areaServed":        "IN",
				"availableLanguage": []string{"English", "Hindi", "Kannada", "Tamil", "Telugu"},
			},
			{
				"@type":             "ContactPoint",
				"email":             c.Email,
				"contactType":       "customer service",
				"areaServed":        "IN",
				"availableLanguage": []string{"English", "Hindi"},
			},
		},
		"sameAs": c.SocialProfiles,
		"aggregateRating": map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": "4.9",
			"reviewCount": "175",
			"bestRating":  "5",
			"worstRating": "1",
		},
	}
}

// LocalBusiness returns the EventVenue document used for local search.
func (s *Site) LocalBusiness() Schema {
	c := s.Company
	areas := make([]map[string]any, 0, len(c.AreaServed))
	for _, a := range c.AreaServed {
		areas = append(areas, map[string]any{"@type": "City", "name": a})
	}
	return Schema{
		"@context": schemaContext,
		"@type":    "EventVenue",
		"@id":      c.URL + "/#localbusiness",
		"name":     c.Name,
		"image": []string{
			c.URL + "/assets/images/home/hero-image-1.jpg",
			c.URL + "/assets/images/home/hero-image-2.jpg",
			c.URL + "/assets/images/home/hero-image-3.jpg",
		},
		"url":        c.URL,
		"telephone":  c.Phone,
		"priceRange": c.PriceRange,
		"address":    postalAddress(c.Address),
		"geo": map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  c.Geo.Latitude,
			"longitude": c.Geo.Longitude,
		},
		"openingHoursSpecification": []map[string]any{
			{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
				"opens":     "09:00",
				"closes":    "18:00",
			},
			{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": "Saturday",
				"opens":     "09:00",
				"closes":    "14:00",
			},
		},
		"currenciesAccepted": c.CurrenciesAccepted,
		"paymentAccepted":    c.PaymentAccepted,
		"areaServed":         areas,
		"amenityFeature": []map[string]any{
			{"@type": "LocationFeatureSpecification", "value": "Event Planning"},
			{"@type": "LocationFeatureSpecification", "value": "Corporate Events"},
			{"@type": "LocationFeatureSpecification", "value": "Virtual Events"},
		},
	}
}

// Service returns a Service document with an offer catalog of the company's
// service types.
func (s *Site) Service(svc ServiceInfo) Schema {
	c := s.Company
	offers := make([]map[string]any, 0, len(c.ServiceTypes))
	for i, t := range c.ServiceTypes {
		offers = append(offers, map[string]any{
			"@type":       "Offer",
			"itemOffered": map[string]any{"@type": "Service", "name": t},
			"position":    i + 1,
		})
	}

	doc := Schema{
		"@context":    schemaContext,
		"@type":       "Service",
		"name":        svc.Name,
		"description": svc.Description,
		"provider": map[string]any{
			"@type": "Organization",
			"name":  orDefault(svc.Provider, c.Name),
			"url":   c.URL,
		},
		"serviceType": orDefault(svc.ServiceType, "Event Management"),
		"areaServed":  c.AreaServed,
		"hasOfferCatalog": map[string]any{
			"@type":           "OfferCatalog",
			"name":            svc.Name + " Services",
			"itemListElement": offers,
		},
	}
	if len(svc.AreaServed) > 0 {
		doc["areaServed"] = svc.AreaServed
	}
	if svc.Image != "" {
		doc["image"] = svc.Image
	}
	return doc
}

// Article returns an Article document. The body is cut to its first
// thousand characters.
func (s *Site) Article(a ArticleInfo) Schema {
	c := s.Company
	keywords := c.Keywords.Primary
	if len(a.Keywords) > 0 {
		keywords = a.Keywords
	}
	return Schema{
		"@context":    schemaContext,
		"@type":       "Article",
		"headline":    a.Title,
		"description": a.Description,
		"articleBody": truncateRunes(a.Content, articleBodyLimit),
		"author": map[string]any{
			"@type": "Person",
			"name":  a.Author,
			"url":   c.URL + "/team",
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  c.Name,
			"logo":  map[string]any{"@type": "ImageObject", "url": c.Logo},
		},
		"datePublished":    a.PublishDate,
		"dateModified":     orDefault(a.ModifiedDate, a.PublishDate),
		"image":            orDefault(a.Image, c.Logo),
		"mainEntityOfPage": map[string]any{"@type": "WebPage", "@id": a.URL},
		"keywords":         strings.Join(keywords, ", "),
	}
}

// Event returns an Event document. A named location is placed in Bangalore.
func (s *Site) Event(e EventInfo) Schema {
	c := s.Company
	doc := Schema{
		"@context":            schemaContext,
		"@type":               "Event",
		"name":                e.Name,
		"description":         e.Description,
		"eventStatus":         "https://schema.org/EventScheduled",
		"eventAttendanceMode": "https://schema.org/OfflineEventAttendanceMode",
		"image":               orDefault(e.Image, c.Logo),
		"organizer": map[string]any{
			"@type": "Organization",
			"name":  orDefault(e.Organizer, c.Name),
			"url":   c.URL,
		},
		"performer": map[string]any{"@type": "Organization", "name": c.Name},
	}
	if e.StartDate != "" {
		doc["startDate"] = e.StartDate
	}
	if end := orDefault(e.EndDate, e.StartDate); end != "" {
		doc["endDate"] = end
	}
	if e.Location != "" {
		doc["location"] = map[string]any{
			"@type": "Place",
			"name":  e.Location,
			"address": postalAddress(Address{
				AddressLocality: "Bangalore",
				AddressRegion:   "Karnataka",
				AddressCountry:  "IN",
			}),
		}
	}
	return doc
}

// Breadcrumbs returns a BreadcrumbList with positions starting at 1.
func (s *Site) Breadcrumbs(crumbs []Crumb) Schema {
	items := make([]map[string]any, 0, len(crumbs))
	for i, cr := range crumbs {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     cr.Name,
			"item":     s.Company.URL + cr.Path,
		})
	}
	return Schema{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// FAQPage returns an FAQPage document.
func (s *Site) FAQPage(faqs []FAQ) Schema {
	entities := make([]map[string]any, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, map[string]any{
			"@type":          "Question",
			"name":           f.Question,
			"acceptedAnswer": map[string]any{"@type": "Answer", "text": f.Answer},
		})
	}
	return Schema{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// Person returns a Person document employed by the company.
func (s *Site) Person(p PersonInfo) Schema {
	doc := Schema{
		"@context": schemaContext,
		"@type":    "Person",
		"name":     p.Name,
		"jobTitle": p.JobTitle,
		"worksFor": map[string]any{
			"@type": "Organization",
			"name":  s.Company.Name,
			"url":   s.Company.URL,
		},
	}
	setIf(doc, "description", p.Description)
	setIf(doc, "image", p.Image)
	setIf(doc, "email", p.Email)
	setIf(doc, "telephone", p.Telephone)
	return doc
}

// JobPosting returns a JobPosting document. Without an explicit ValidThrough
// the posting expires ninety days after now.
func (s *Site) JobPosting(j JobInfo, now time.Time) Schema {
	c := s.Company
	validThrough := j.ValidThrough
	if validThrough == "" {
		validThrough = now.Add(jobPostingTTL).UTC().Format(time.RFC3339)
	}
	doc := Schema{
		"@context":       schemaContext,
		"@type":          "JobPosting",
		"title":          j.Title,
		"description":    j.Description,
		"datePosted":     j.DatePosted,
		"validThrough":   validThrough,
		"employmentType": orDefault(j.EmploymentType, "FULL_TIME"),
		"hiringOrganization": map[string]any{
			"@type":  "Organization",
			"name":   c.Name,
			"sameAs": c.URL,
			"logo":   c.Logo,
		},
		"jobLocation": map[string]any{
			"@type": "Place",
			"address": postalAddress(Address{
				AddressLocality: orDefault(j.Location, "Bangalore"),
				AddressRegion:   "Karnataka",
				AddressCountry:  "IN",
			}),
		},
	}
	if j.Salary != nil {
		var value any = j.Salary.Min
		if j.Salary.Max > 0 {
			value = map[string]any{
				"@type":    "QuantitativeValue",
				"minValue": j.Salary.Min,
				"maxValue": j.Salary.Max,
				"unitText": "YEAR",
			}
		}
		doc["baseSalary"] = map[string]any{
			"@type":    "MonetaryAmount",
			"currency": orDefault(j.Salary.Currency, "INR"),
			"value":    value,
		}
	}
	return doc
}

// WebSite returns the WebSite document with a sitelinks search action.
func (s *Site) WebSite() Schema {
	c := s.Company
	return Schema{
		"@context":    schemaContext,
		"@type":       "WebSite",
		"@id":         c.URL + "/#website",
		"url":         c.URL,
		"name":        c.Name,
		"description": c.Description,
		"publisher":   map[string]any{"@id": c.URL + "/#organization"},
		"potentialAction": map[string]any{
			"@type": "SearchAction",
			"target": map[string]any{
				"@type":       "EntryPoint",
				"urlTemplate": c.URL + "/search?q={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		},
		"inLanguage": []string{"en-IN", "en", "hi", "kn", "ta", "te"},
	}
}

func postalAddress(a Address) map[string]any {
	m := map[string]any{
		"@type":           "PostalAddress",
		"addressLocality": a.AddressLocality,
		"addressRegion":   a.AddressRegion,
		"addressCountry":  a.AddressCountry,
	}
	setIf(m, "streetAddress", a.StreetAddress)
	setIf(m, "postalCode", a.PostalCode)
	return m
}

func setIf[M ~map[string]any](m M, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
