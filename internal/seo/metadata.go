package seo

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

const (
	// MaxTitleLength is the longest meta title search engines display in full.
	MaxTitleLength = 60
	// MaxDescriptionLength is the longest meta description kept.
	MaxDescriptionLength = 160
)

// PageInput describes the page a Metadata is built for.
type PageInput struct {
	Title       string
	Description string
	Keywords    []string
	Path        string
	Images      []string
	NoIndex     bool
	Type        string
}

// OpenGraph holds og:* properties.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Images      []string
	Locale      string
	Type        string
}

// Twitter holds twitter:* card properties.
type Twitter struct {
	Card        string
	Title       string
	Description string
	Images      []string
	Creator     string
}

// Robots is the indexing directive for crawlers.
type Robots struct {
	Index  bool
	Follow bool
}

// String renders the directive as a robots meta content value.
func (r Robots) String() string {
	index, follow := "noindex", "nofollow"
	if r.Index {
		index = "index"
	}
	if r.Follow {
		follow = "follow"
	}
	return index + ", " + follow
}

// GoogleBot renders the googlebot meta content value.
func (r Robots) GoogleBot() string {
	return r.String() + ", max-video-preview:-1, max-image-preview:large, max-snippet:-1"
}

// Metadata is everything a page puts in its <head>.
type Metadata struct {
	Title        string
	Description  string
	Keywords     string
	Author       string
	Canonical    string
	Languages    map[string]string
	OpenGraph    OpenGraph
	Twitter      Twitter
	Robots       Robots
	Verification string
}

// PageMetadata builds head metadata for a page. Keywords default to the
// company's primary keywords and images to the company logo.
func (s *Site) PageMetadata(p PageInput) Metadata {
	c := s.Company
	fullURL := s.URL(p.Path)
	if p.Path == "" {
		fullURL = c.URL
	}

	keywords := c.Keywords.Primary
	if len(p.Keywords) > 0 {
		keywords = p.Keywords
	}
	images := p.Images
	if len(images) == 0 {
		images = []string{c.Logo}
	}

	return Metadata{
		Title:       p.Title,
		Description: p.Description,
		Keywords:    strings.Join(keywords, ", "),
		Author:      c.Name,
		Canonical:   fullURL,
		Languages:   map[string]string{"en-IN": fullURL, "en": fullURL},
		OpenGraph: OpenGraph{
			Title:       p.Title,
			Description: p.Description,
			URL:         fullURL,
			SiteName:    c.Name,
			Images:      images,
			Locale:      "en_IN",
			Type:        orDefault(p.Type, "website"),
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       p.Title,
			Description: p.Description,
			Images:      images,
			Creator:     "@whitemassif",
		},
		Robots:       Robots{Index: !p.NoIndex, Follow: !p.NoIndex},
		Verification: GoogleSiteVerification,
	}
}

// MetaTitle shortens title to MaxTitleLength characters, ending in "..."
// when cut.
func MetaTitle(title string) string {
	if utf8.RuneCountInString(title) <= MaxTitleLength {
		return title
	}
	return truncateRunes(title, MaxTitleLength-3) + "..."
}

var textOnly = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}()

// PlainText strips markup from s and collapses whitespace.
func PlainText(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(textOnly.Sanitize(s))), " ")
}

// MetaDescription derives a description of at most MaxDescriptionLength
// characters from HTML content, cutting at a word boundary. When content has
// no text the description is built from title.
func MetaDescription(content, title string) string {
	desc := PlainText(content)
	if desc == "" {
		desc = title + " - Professional corporate event management and planning services by White Massif in Bangalore."
	} else if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		cut := truncateRunes(desc, MaxDescriptionLength)
		if i := strings.LastIndex(cut, " "); i > 0 {
			cut = cut[:i]
		}
		desc = cut + "..."
	}

	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		desc = truncateRunes(desc, MaxDescriptionLength-3) + "..."
	}
	return desc
}
