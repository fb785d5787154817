package team_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitemassif/website/internal/cms"
	"github.com/whitemassif/website/internal/cms/cmstest"
	"github.com/whitemassif/website/internal/team"
)

func intPtr(v int) *int { return &v }

func roster() []team.Member {
	return []team.Member{
		{ID: 1, Name: "Vinay Kukreja", Department: team.DepartmentLeadership, YearsExperience: intPtr(20)},
		{ID: 2, Name: "Asha Rao", Department: team.DepartmentCreative, YearsExperience: intPtr(5)},
		{ID: 3, Name: "Prakash A Vaswani", Department: team.DepartmentLeadership},
		{ID: 4, Name: "Ravi Kumar", Department: team.DepartmentProduction, YearsExperience: intPtr(4)},
		{ID: 5, Name: "Meera Iyer", Department: team.DepartmentClientServices},
	}
}

func TestListActive(t *testing.T) {
	// Arrange
	reader := &cmstest.Reader{Rows: map[string]any{
		"team_members": []map[string]any{
			{"id": 1, "name": "Asha Rao", "position": "Art Director", "years_experience": 6, "bio": nil},
		},
	}}
	repo := team.NewRepository(reader)

	// Act
	members, err := repo.ListActive(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.NotNil(t, members[0].YearsExperience)
	assert.Equal(t, 6, *members[0].YearsExperience)
	assert.Equal(t, []string{"name"}, reader.Last().Query.Sort)
	assert.Equal(t, cms.Eq("status", "active"), reader.Last().Query.Filter)
}

func TestListActive_Error(t *testing.T) {
	repo := team.NewRepository(&cmstest.Reader{Err: assert.AnError})

	members, err := repo.ListActive(context.Background())

	assert.Nil(t, members)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLeadership_FixedOrder(t *testing.T) {
	leaders := team.Leadership(roster())

	require.Len(t, leaders, 2)
	assert.Equal(t, "Prakash A Vaswani", leaders[0].Name)
	assert.Equal(t, "Vinay Kukreja", leaders[1].Name)
}

func TestOrganize(t *testing.T) {
	s := team.Organize(roster())

	assert.Len(t, s.Leadership, 2)
	assert.Len(t, s.Creative, 1)
	assert.Len(t, s.ClientServices, 1)
	assert.Len(t, s.Production, 1)
	assert.Empty(t, s.Operations)
	assert.Empty(t, s.Strategy)
}

func TestComputeStats(t *testing.T) {
	s := team.ComputeStats(roster())

	assert.Equal(t, 5, s.TotalMembers)
	assert.Equal(t, 2, s.DepartmentCounts[team.DepartmentLeadership])
	// (20 + 5 + 4) / 3 = 9.67
	assert.Equal(t, 10, s.AverageExperience)
}

func TestComputeStats_NoExperience(t *testing.T) {
	s := team.ComputeStats([]team.Member{{Name: "A"}})

	assert.Equal(t, 0, s.AverageExperience)
}

func TestInferDepartment(t *testing.T) {
	tests := []struct {
		position string
		want     string
	}{
		{"Managing Director", team.DepartmentLeadership},
		{"Head of Operations", team.DepartmentLeadership},
		{"Senior Graphic Designer", team.DepartmentCreative},
		{"Client Servicing Manager", team.DepartmentClientServices},
		{"Production Coordinator", team.DepartmentProduction},
		{"Brand Strategist", team.DepartmentStrategy},
		{"Finance Executive", team.DepartmentFinance},
		{"Logistics Executive", team.DepartmentOperations},
	}

	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			assert.Equal(t, tt.want, team.InferDepartment(tt.position))
		})
	}
}
