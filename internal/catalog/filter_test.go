package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []Product) []int {
	if products == nil {
		return nil
	}
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApply_JewelryUnderHundredPriceAsc(t *testing.T) {
	t.Parallel()

	result := Apply(Default().All(), FilterSpec{
		Categories: []string{"Jewelry"},
		MinPrice:   0,
		MaxPrice:   100,
		Sort:       SortPriceAsc,
	})

	// 5 (55), 7 (75), 9 (95); the 150 choker is over the cap.
	assert.Equal(t, []int{5, 7, 9}, ids(result))
}

func TestApply_PriceBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	result := Apply(Default().All(), FilterSpec{
		Categories: []string{CategoryAll},
		MinPrice:   55,
		MaxPrice:   55,
		Sort:       SortFeatured,
	})
	assert.Equal(t, []int{5, 11}, ids(result))
}

func TestApply_AllSentinelPassesEveryCategory(t *testing.T) {
	t.Parallel()

	all := Default().All()
	result := Apply(all, FilterSpec{
		Categories: []string{CategoryAll},
		MinPrice:   0,
		MaxPrice:   500,
		Sort:       SortFeatured,
	})
	assert.Len(t, result, len(all))
}

func TestApply_EmptyCategoriesPassEverything(t *testing.T) {
	t.Parallel()

	result := Apply(Default().All(), FilterSpec{
		MinPrice: 0,
		MaxPrice: 500,
		Sort:     SortFeatured,
	})
	assert.Len(t, result, 12)
}

func TestApply_SortKeys(t *testing.T) {
	t.Parallel()

	products := []Product{
		{ID: 1, Name: "banana", Price: 30},
		{ID: 2, Name: "Apple", Price: 10},
		{ID: 3, Name: "cherry", Price: 30},
	}
	spec := FilterSpec{MinPrice: 0, MaxPrice: 100}

	tests := []struct {
		name string
		sort SortKey
		want []int
	}{
		{name: "featured is id order", sort: SortFeatured, want: []int{1, 2, 3}},
		{name: "price asc, ties keep original order", sort: SortPriceAsc, want: []int{2, 1, 3}},
		{name: "price desc, ties keep original order", sort: SortPriceDesc, want: []int{1, 3, 2}},
		{name: "name ignores case", sort: SortName, want: []int{2, 1, 3}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spec := spec
			spec.Sort = tt.sort
			assert.Equal(t, tt.want, ids(Apply(products, spec)))
		})
	}
}

func TestApply_EmptyResultIsValid(t *testing.T) {
	t.Parallel()

	result := Apply(Default().All(), FilterSpec{
		Categories: []string{"Jewelry"},
		MinPrice:   1000,
		MaxPrice:   2000,
		Sort:       SortPriceAsc,
	})
	assert.Empty(t, result)
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	in := []Product{
		{ID: 2, Price: 20},
		{ID: 1, Price: 10},
	}
	_ = Apply(in, FilterSpec{MinPrice: 0, MaxPrice: 100, Sort: SortPriceAsc})
	require.Equal(t, []int{2, 1}, ids(in))
}
