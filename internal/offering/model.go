package offering

// Feature is one highlighted capability of a service.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service represents an item of the services collection.
type Service struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	Content       string            `json:"content"`
	Category      string            `json:"category"`
	Status        string            `json:"status"`
	FeaturedImage string            `json:"featured_image"`
	Features      []Feature         `json:"features"`
	Stats         map[string]string `json:"stats"`
	Gallery       []string          `json:"gallery"`
	SortOrder     int               `json:"sort_order"`
}
