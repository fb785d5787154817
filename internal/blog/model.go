package blog

import "time"

// Post represents an item of the blog collection.
type Post struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	FeaturedImage string   `json:"featured_image"`
	PublishedDate string   `json:"published_date"`
	Status        string   `json:"status"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Author        string   `json:"author"`
	ReadTime      string   `json:"read_time"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PublishedAt parses PublishedDate. It returns the zero time when the value is
// empty or in an unknown layout.
func (p Post) PublishedAt() time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, p.PublishedDate); err == nil {
			return t
		}
	}
	return time.Time{}
}
