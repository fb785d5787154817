package team

import (
	"math"
	"strings"
)

// LeadershipNames lists the leadership team in display order.
var LeadershipNames = []string{"Prakash A Vaswani", "Pehal Kukreja", "Vinay Kukreja"}

// Leadership picks the members named in LeadershipNames, in that order.
// Names without a matching member are skipped.
func Leadership(members []Member) []Member {
	byName := make(map[string]Member, len(members))
	for _, m := range members {
		if _, seen := byName[m.Name]; !seen {
			byName[m.Name] = m
		}
	}

	leaders := make([]Member, 0, len(LeadershipNames))
	for _, name := range LeadershipNames {
		if m, ok := byName[name]; ok {
			leaders = append(leaders, m)
		}
	}
	return leaders
}

// ByDepartment returns the members of one department, preserving order.
func ByDepartment(members []Member, department string) []Member {
	out := []Member{}
	for _, m := range members {
		if m.Department == department {
			out = append(out, m)
		}
	}
	return out
}

// Organize arranges members into the team page sections.
func Organize(members []Member) Structure {
	return Structure{
		Leadership:     Leadership(members),
		Creative:       ByDepartment(members, DepartmentCreative),
		ClientServices: ByDepartment(members, DepartmentClientServices),
		Production:     ByDepartment(members, DepartmentProduction),
		Operations:     ByDepartment(members, DepartmentOperations),
		Strategy:       ByDepartment(members, DepartmentStrategy),
	}
}

// ComputeStats counts members per department and averages years of experience
// over the members that report it, rounded to the nearest year.
func ComputeStats(members []Member) Stats {
	s := Stats{
		TotalMembers:     len(members),
		DepartmentCounts: map[string]int{},
	}

	var sum, n int
	for _, m := range members {
		s.DepartmentCounts[m.Department]++
		if m.YearsExperience != nil {
			sum += *m.YearsExperience
			n++
		}
	}
	if n > 0 {
		s.AverageExperience = int(math.Round(float64(sum) / float64(n)))
	}
	return s
}

// InferDepartment guesses a department from a job title. Titles that match no
// rule land in Operations.
func InferDepartment(position string) string {
	p := strings.ToLower(position)
	switch {
	case containsAny(p, "director", "head"):
		return DepartmentLeadership
	case containsAny(p, "creative", "art", "design"):
		return DepartmentCreative
	case containsAny(p, "client", "account", "servicing"):
		return DepartmentClientServices
	case containsAny(p, "production", "coordinator"):
		return DepartmentProduction
	case containsAny(p, "strategy", "strategist"):
		return DepartmentStrategy
	case containsAny(p, "hr", "human"):
		return DepartmentHR
	case containsAny(p, "finance"):
		return DepartmentFinance
	}
	return DepartmentOperations
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
