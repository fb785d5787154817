package portfolio

import (
	"encoding/json"
	"strings"
)

// File references a CMS file. Depending on the requested fields the API
// returns either the bare file id or the expanded file object.
type File struct {
	ID       string `json:"id"`
	Filename string `json:"filename_download"`
	Title    string `json:"title"`
}

// UnmarshalJSON accepts a file id string or a file object.
func (f *File) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		*f = File{ID: id}
		return nil
	}
	type plain File
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*f = File(p)
	return nil
}

// GalleryItem is one image of a project gallery. Galleries are stored through
// a junction collection, so items usually arrive as
// {"directus_files_id": {...}}; a bare file is accepted too.
type GalleryItem struct {
	File
}

// UnmarshalJSON unwraps the junction row when present. Unexpanded junction
// ids and rows without a file decode to an item with an empty ID.
func (g *GalleryItem) UnmarshalJSON(b []byte) error {
	var junction struct {
		File *File `json:"directus_files_id"`
	}
	if err := json.Unmarshal(b, &junction); err == nil && junction.File != nil {
		g.File = *junction.File
		return nil
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		g.File = File{}
		return nil
	}
	g.File = f
	return nil
}

// Category represents an item of the portfolio_categories collection.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon"`
}

// UnmarshalJSON accepts an unexpanded category id as well as the object.
func (c *Category) UnmarshalJSON(b []byte) error {
	var id int
	if err := json.Unmarshal(b, &id); err == nil {
		*c = Category{ID: id}
		return nil
	}
	type plain Category
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*c = Category(p)
	return nil
}

// Project represents an item of the portfolio_projects collection.
type Project struct {
	ID            int           `json:"id"`
	Status        string        `json:"status"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Year          int           `json:"year"`
	Category      *Category     `json:"category"`
	Description   string        `json:"description"`
	FeaturedImage *File         `json:"featured_image"`
	Gallery       []GalleryItem `json:"gallery"`
	ClientName    string        `json:"client_name"`
	EventDate     string        `json:"event_date"`
	Location      string        `json:"location"`
	SortOrder     int           `json:"sort_order"`
}

// UnknownCategory names projects without a category.
const UnknownCategory = "Unknown"

// CategoryName returns the category name, or UnknownCategory.
func (p Project) CategoryName() string {
	if p.Category == nil || strings.TrimSpace(p.Category.Name) == "" {
		return UnknownCategory
	}
	return p.Category.Name
}

// CategoryID is the filter key of the project's category: the lowercased
// name with whitespace runs replaced by "-".
func (p Project) CategoryID() string {
	return CategoryKey(p.CategoryName())
}

// HeroImage returns the featured image id, falling back to the first gallery
// image. It is empty when the project has no images.
func (p Project) HeroImage() string {
	if p.FeaturedImage != nil && p.FeaturedImage.ID != "" {
		return p.FeaturedImage.ID
	}
	for _, g := range p.Gallery {
		if g.ID != "" {
			return g.ID
		}
	}
	return ""
}

// CategoryKey turns a category name into its filter key.
func CategoryKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
