package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitemassif/website/internal/api/validation"
)

func TestValidSlug(t *testing.T) {
	valid := []string{"corporate-events", "holi-2024", "a"}
	invalid := []string{"", "Upper", "trailing-", "-leading", "double--dash", "with space", "../etc", strings.Repeat("a", 201)}

	for _, s := range valid {
		assert.True(t, validation.ValidSlug(s), "expected %q to be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, validation.ValidSlug(s), "expected %q to be invalid", s)
	}
}

func TestValidateClientsQuery(t *testing.T) {
	tests := []struct {
		name       string
		search     string
		page       string
		want       validation.ClientsQuery
		wantFields []string
	}{
		{name: "defaults", want: validation.ClientsQuery{Page: 1}},
		{name: "trimmed search and page", search: "  tech ", page: "3", want: validation.ClientsQuery{Search: "tech", Page: 3}},
		{name: "bad page", page: "zero", want: validation.ClientsQuery{Page: 1}, wantFields: []string{"page"}},
		{name: "negative page", page: "-2", want: validation.ClientsQuery{Page: 1}, wantFields: []string{"page"}},
		{name: "page beyond the cap", page: "10001", want: validation.ClientsQuery{Page: 1}, wantFields: []string{"page"}},
		{name: "page at the cap", page: "10000", want: validation.ClientsQuery{Page: 10000}},
		{name: "overflowing page", page: "768614336404564651", want: validation.ClientsQuery{Page: 1}, wantFields: []string{"page"}},
		{name: "long search", search: strings.Repeat("x", 101), want: validation.ClientsQuery{Search: strings.Repeat("x", 101), Page: 1}, wantFields: []string{"search"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, errs := validation.ValidateClientsQuery(tt.search, tt.page)

			assert.Equal(t, tt.want, q)
			require.Len(t, errs, len(tt.wantFields))
			for i, f := range tt.wantFields {
				assert.Equal(t, f, errs[i].Field)
			}
		})
	}
}

func TestValidateListLimit(t *testing.T) {
	n, errs := validation.ValidateListLimit("", 50, 500)
	assert.Empty(t, errs)
	assert.Equal(t, 50, n)

	n, errs = validation.ValidateListLimit("20", 50, 500)
	assert.Empty(t, errs)
	assert.Equal(t, 20, n)

	_, errs = validation.ValidateListLimit("0", 50, 500)
	require.Len(t, errs, 1)
	assert.Equal(t, "limit must be a positive integer", errs[0].Message)

	_, errs = validation.ValidateListLimit("501", 50, 500)
	require.Len(t, errs, 1)
	assert.Equal(t, "limit must be at most 500", errs[0].Message)
}
