package catalogue

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering applied to query results.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByBrand  SortKey = "brand"
	SortByNewest SortKey = "newest"
	SortByOldest SortKey = "oldest"
)

// ParseSortKey validates a sort key from the query surface.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByName, SortByBrand, SortByNewest, SortByOldest:
		return SortKey(s), true
	}
	return "", false
}

// Criteria is the full set of filter selections for one catalogue view.
// Empty selection slices mean "no constraint"; the zero value matches
// the whole catalogue.
type Criteria struct {
	Query        string
	CategoryIDs  []string
	Brands       []string
	Tags         []string
	FeaturedOnly bool
	SortBy       SortKey
}

// Search returns products whose name, brand, description, category name
// or any tag contains the query, case-insensitively. A blank or
// whitespace-only query matches the full catalogue.
func Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Products()
	}
	var out []Product
	for _, p := range products {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category.Name), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FilterByCategory keeps products whose category id is in ids.
// An empty selection keeps everything.
func FilterByCategory(ps []Product, ids []string) []Product {
	if len(ids) == 0 {
		return ps
	}
	set := toSet(ids)
	var out []Product
	for _, p := range ps {
		if set[p.Category.ID] {
			out = append(out, p)
		}
	}
	return out
}

// FilterByBrand keeps products whose brand name is in brands.
// An empty selection keeps everything.
func FilterByBrand(ps []Product, brands []string) []Product {
	if len(brands) == 0 {
		return ps
	}
	set := toSet(brands)
	var out []Product
	for _, p := range ps {
		if set[p.Brand] {
			out = append(out, p)
		}
	}
	return out
}

// FilterByTag keeps products carrying at least one of the given tags.
// An empty selection keeps everything.
func FilterByTag(ps []Product, tags []string) []Product {
	if len(tags) == 0 {
		return ps
	}
	set := toSet(tags)
	var out []Product
	for _, p := range ps {
		for _, tag := range p.Tags {
			if set[tag] {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// FilterFeatured keeps featured products only.
func FilterFeatured(ps []Product) []Product {
	var out []Product
	for _, p := range ps {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a new slice ordered by key. The input is never mutated
// and the ordering is stable. Name and brand sorts use a locale-aware,
// case-insensitive comparison; an unknown key leaves the copy unordered.
func Sort(ps []Product, key SortKey) []Product {
	out := make([]Product, len(ps))
	copy(out, ps)

	switch key {
	case SortByName:
		c := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByBrand:
		c := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Brand, out[j].Brand) < 0
		})
	case SortByNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DateAdded.After(out[j].DateAdded)
		})
	case SortByOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DateAdded.Before(out[j].DateAdded)
		})
	}
	return out
}

// Apply runs the full criteria against the catalogue: text search
// first, then category, brand, tag and featured filters, then one
// sort. Each stage only ever narrows the candidate set, so the result
// is the intersection of all active predicates.
func Apply(c Criteria) []Product {
	ps := Search(c.Query)
	ps = FilterByCategory(ps, c.CategoryIDs)
	ps = FilterByBrand(ps, c.Brands)
	ps = FilterByTag(ps, c.Tags)
	if c.FeaturedOnly {
		ps = FilterFeatured(ps)
	}
	return Sort(ps, c.SortBy)
}

// ProductsByCategory returns the products in the given category.
func ProductsByCategory(categoryID string) []Product {
	var out []Product
	for _, p := range products {
		if p.Category.ID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// ProductsByBrand returns products whose brand contains the given
// name, case-insensitively.
func ProductsByBrand(brand string) []Product {
	b := strings.ToLower(brand)
	var out []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Brand), b) {
			out = append(out, p)
		}
	}
	return out
}

// FeaturedProducts returns the featured subset of the catalogue.
func FeaturedProducts() []Product {
	return FilterFeatured(products)
}

// AllBrands returns every brand in the catalogue, deduplicated and sorted.
func AllBrands() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			out = append(out, p.Brand)
		}
	}
	sort.Strings(out)
	return out
}

// AllTags returns every tag in the catalogue, deduplicated and sorted.
func AllTags() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		for _, tag := range p.Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	sort.Strings(out)
	return out
}

func toSet(vals []string) map[string]bool {
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return set
}
