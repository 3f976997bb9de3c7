// Package catalog holds the fixed product set and the filtered views
// derived from it. Products are immutable after construction.
package catalog

import (
	"sort"
	"strings"
)

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"desc"`
	Tags        []string `json:"tags"`
}

type Catalog struct {
	products []Product
	byID     map[int]Product
}

func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[int]Product, len(products)),
	}
	copy(c.products, products)
	for _, p := range c.products {
		c.byID[p.ID] = p
	}
	return c
}

func (c *Catalog) Lookup(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns the products in catalog insertion order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// Search matches term against name, category and tags, case-insensitively.
// Terms shorter than two runes match nothing, same as the search overlay in
// the original client.
func (c *Catalog) Search(term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if len([]rune(term)) < 2 {
		return nil
	}
	var out []Product
	for _, p := range c.products {
		if matches(p, term) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
