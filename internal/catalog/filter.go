package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortName      SortKey = "name"
)

// CategoryAll passes every category when present in FilterSpec.Categories.
const CategoryAll = "all"

type FilterSpec struct {
	Categories []string `json:"categories"`
	MinPrice   float64  `json:"min_price"`
	MaxPrice   float64  `json:"max_price"`
	Sort       SortKey  `json:"sort"`
}

// Apply filters and sorts products. Pure: the input slice is never
// modified and no state survives between calls.
func Apply(products []Product, spec FilterSpec) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !spec.passes(p) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, spec.Sort)
	return out
}

func (s FilterSpec) passes(p Product) bool {
	if p.Price < s.MinPrice || p.Price > s.MaxPrice {
		return false
	}
	if len(s.Categories) == 0 {
		return true
	}
	for _, c := range s.Categories {
		if c == CategoryAll || c == p.Category {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortName:
		coll := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			return coll.CompareString(products[i].Name, products[j].Name) < 0
		})
	default:
		// Featured reflects catalog insertion order.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID < products[j].ID
		})
	}
}
