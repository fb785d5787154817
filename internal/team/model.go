package team

// Member represents an item of the team_members collection.
type Member struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Position        string `json:"position"`
	Department      string `json:"department"`
	Bio             string `json:"bio"`
	Image           string `json:"team_member_image"`
	Email           string `json:"email"`
	LinkedIn        string `json:"linkedin"`
	YearsExperience *int   `json:"years_experience"`
	Status          string `json:"status"`
}

// Department names used by the team page.
const (
	DepartmentLeadership     = "Leadership"
	DepartmentCreative       = "Creative"
	DepartmentClientServices = "Client Services"
	DepartmentProduction     = "Production"
	DepartmentOperations     = "Operations"
	DepartmentStrategy       = "Strategy"
	DepartmentHR             = "HR"
	DepartmentFinance        = "Finance"
)

// Structure is the team page layout, one slice per section in display order.
type Structure struct {
	Leadership     []Member
	Creative       []Member
	ClientServices []Member
	Production     []Member
	Operations     []Member
	Strategy       []Member
}

// Stats summarises the active team.
type Stats struct {
	TotalMembers      int
	DepartmentCounts  map[string]int
	AverageExperience int
}
