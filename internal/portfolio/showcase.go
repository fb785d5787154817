package portfolio

import "slices"

// AllCategories is the filter key that selects every project.
const AllCategories = "all"

// categoryLabels renames CMS categories for the filter bar.
var categoryLabels = map[string]string{
	"Corporate Event":       "Corporate Events",
	"Corporate Celebration": "Celebrations",
	"Awards Ceremony":       "Awards Ceremonies",
	"Summit":                "Summits",
}

// CategoryCount is one entry of the portfolio filter bar.
type CategoryCount struct {
	ID    string
	Name  string
	Count int
}

// Categories returns the filter bar: an "All Projects" entry followed by one
// entry per category in first-seen order.
func Categories(projects []Project) []CategoryCount {
	out := []CategoryCount{{ID: AllCategories, Name: "All Projects", Count: len(projects)}}
	index := map[string]int{}
	for _, p := range projects {
		id := p.CategoryID()
		if i, ok := index[id]; ok {
			out[i].Count++
			continue
		}
		name := p.CategoryName()
		if label, ok := categoryLabels[name]; ok {
			name = label
		}
		index[id] = len(out)
		out = append(out, CategoryCount{ID: id, Name: name, Count: 1})
	}
	return out
}

// FilterByCategory keeps the projects whose CategoryID matches id. An empty
// id or AllCategories keeps everything.
func FilterByCategory(projects []Project, id string) []Project {
	if id == "" || id == AllCategories {
		return projects
	}
	out := []Project{}
	for _, p := range projects {
		if p.CategoryID() == id {
			out = append(out, p)
		}
	}
	return out
}

// FilterByYear keeps the projects of one year; zero keeps everything.
func FilterByYear(projects []Project, year int) []Project {
	if year == 0 {
		return projects
	}
	out := []Project{}
	for _, p := range projects {
		if p.Year == year {
			out = append(out, p)
		}
	}
	return out
}

// Years lists the distinct project years, newest first.
func Years(projects []Project) []int {
	years := []int{}
	for _, p := range projects {
		if p.Year != 0 && !slices.Contains(years, p.Year) {
			years = append(years, p.Year)
		}
	}
	slices.Sort(years)
	slices.Reverse(years)
	return years
}

// Video is an event film served from the CMS file library.
type Video struct {
	File    string
	Title   string
	Project string
}

// Videos are the event films shown on the work page. They are not modelled
// in the CMS yet.
var Videos = []Video{
	{File: "bridage-wm-v3-1.mp4", Title: "BRIGADE FIESTA 2024", Project: "brigade-fiesta-2024"},
	{File: "grandpmu-aftermovie-6.mp4", Title: "GRAND PMU INDIA 2024", Project: "grand-pmu-india-2024"},
	{File: "micelio-wm-version-1.mp4", Title: "MICELIO CLEAN MOBILITY SUMMIT 2024", Project: "micelio-clean-mobility-summit-2024"},
	{File: "withum-2024-1.mp4", Title: "WITHUM SOFT 2024", Project: "withum-soft-2024"},
}
