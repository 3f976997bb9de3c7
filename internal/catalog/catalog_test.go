package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookup(t *testing.T) {
	t.Parallel()

	c := Default()

	p, ok := c.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, "Pearl Drop Earrings", p.Name)
	assert.Equal(t, 55.0, p.Price)

	_, ok = c.Lookup(999)
	assert.False(t, ok)
}

func TestCatalog_Categories(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"Accessories", "Digital", "Fragrance", "Jewelry", "Lifestyle"},
		Default().Categories(),
	)
}

func TestCatalog_Search(t *testing.T) {
	t.Parallel()

	c := Default()

	tests := []struct {
		name string
		term string
		want []int
	}{
		{name: "by name", term: "tote", want: []int{3}},
		{name: "case insensitive", term: "PEARL", want: []int{5}},
		{name: "by category", term: "fragrance", want: []int{2, 10}},
		{name: "by tag", term: "hydration", want: []int{12}},
		{name: "too short", term: "t", want: nil},
		{name: "no match", term: "zzzz", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ids(c.Search(tt.term)))
		})
	}
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Default()
	all := c.All()
	all[0].Name = "mutated"

	p, ok := c.Lookup(all[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", p.Name)
}
