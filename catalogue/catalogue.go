// Package catalogue holds the static product set shown on the site and
// answers filter/sort/search queries over it. All operations are pure
// reads; the product list is fixed at compile time and never mutated.
package catalogue

import "time"

// Category groups products for filtering and display
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"` // presentation token for category tags
}

// Product represents a catalogue entry
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       *Category         `json:"category"`
	Subcategory    string            `json:"subcategory,omitempty"`
	Brand          string            `json:"brand"`
	Description    string            `json:"description"`
	Specifications map[string]string `json:"specifications"`
	Image          string            `json:"image"`
	Tags           []string          `json:"tags"`
	DateAdded      time.Time         `json:"date_added"`
	Featured       bool              `json:"featured"`
}

var categories = []*Category{
	{
		ID:          "lubricants",
		Name:        "Lubricants",
		Description: "Motor oils and lubricants for all vehicle types",
		Color:       "bg-blue-100 text-blue-800",
	},
	{
		ID:          "filters",
		Name:        "Filters",
		Description: "Oil, air, fuel, and cabin filters",
		Color:       "bg-green-100 text-green-800",
	},
	{
		ID:          "additives",
		Name:        "Additives",
		Description: "Engine treatments and performance enhancers",
		Color:       "bg-purple-100 text-purple-800",
	},
	{
		ID:          "tools",
		Name:        "Tools & Equipment",
		Description: "Professional tools and equipment",
		Color:       "bg-orange-100 text-orange-800",
	},
	{
		ID:          "maintenance",
		Name:        "Maintenance",
		Description: "General maintenance and care products",
		Color:       "bg-red-100 text-red-800",
	},
	{
		ID:          "fluids",
		Name:        "Fluids",
		Description: "Transmission, brake, and other automotive fluids",
		Color:       "bg-indigo-100 text-indigo-800",
	},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var products = []Product{
	// Lubricants
	{
		ID:          "shell-rotella-t6",
		Name:        "Shell 20W-50 - Fully synthetic blend",
		Category:    categories[0],
		Subcategory: "Diesel Oil",
		Brand:       "Shell",
		Description: "Full synthetic heavy duty engine oil with Triple Protection Plus technology.",
		Specifications: map[string]string{
			"Viscosity":   "5W-40",
			"Type":        "Full Synthetic",
			"Volume":      "1 Gallon",
			"API Rating":  "CK-4",
			"Application": "Heavy Duty Diesel",
		},
		Image:     "/catalogue/Shell-20W50.png",
		Tags:      []string{"diesel", "synthetic"},
		DateAdded: date(2024, time.January, 25),
		Featured:  false,
	},
	{
		ID:          "valvoline-maxlife",
		Name:        "Valvoline MaxLife High Mileage 10W-30",
		Category:    categories[0],
		Subcategory: "High Mileage Oil",
		Brand:       "Valvoline",
		Description: "Specially formulated for vehicles with over 75,000 miles to reduce leaks and oil burn-off.",
		Specifications: map[string]string{
			"Viscosity":  "10W-30",
			"Type":       "High Mileage",
			"Volume":     "5 Quarts",
			"API Rating": "SN",
			"Mileage":    "75,000+ miles",
		},
		Image:     "/catalogue/f702f605db0dd661ad596979dddf1016.valvoline-20w-50.webp",
		Tags:      []string{"high-mileage", "10w30"},
		DateAdded: date(2024, time.February, 1),
		Featured:  false,
	},

	// Filters
	{
		ID:          "fram-ph7317",
		Name:        "FRAM Extra Guard Oil Filter PH7317",
		Category:    categories[1],
		Subcategory: "Oil Filters",
		Brand:       "FRAM",
		Description: "Extra Guard protection with 2X the dirt holding capacity and removes 95% of dirt particles.",
		Specifications: map[string]string{
			"Thread Size":   "3/4-16",
			"Height":        "3.69 inches",
			"Diameter":      "3.66 inches",
			"Gasket":        "Nitrile rubber",
			"Compatibility": "Most domestic vehicles",
		},
		Image:     "/catalogue/61V0QUbAaIL._UF1000,1000_QL80_.jpg",
		Tags:      []string{"oil-filter", "fram"},
		DateAdded: date(2024, time.January, 18),
		Featured:  true,
	},
	{
		ID:          "k-n-hp1017",
		Name:        "K&N Performance Gold Oil Filter HP-1017",
		Category:    categories[1],
		Subcategory: "Oil Filters",
		Brand:       "K&N",
		Description: "High-flow, premium oil filter designed for high performance applications.",
		Specifications: map[string]string{
			"Thread Size": "3/4-16",
			"Height":      "4.69 inches",
			"Diameter":    "3.66 inches",
			"Material":    "Synthetic blend media",
			"Flow Rate":   "High performance",
		},
		Image:     "/catalogue/33-2381_2.jpg",
		Tags:      []string{"oil-filter", "performance"},
		DateAdded: date(2024, time.January, 22),
		Featured:  false,
	},
	{
		ID:          "bosch-3323",
		Name:        "Bosch Premium FILTECH Oil Filter 3323",
		Category:    categories[1],
		Subcategory: "Oil Filters",
		Brand:       "Bosch",
		Description: "Premium quality oil filter with advanced filtration technology and superior construction.",
		Specifications: map[string]string{
			"Thread Size": "M20 x 1.5",
			"Height":      "86mm",
			"Diameter":    "76mm",
			"Material":    "Synthetic media",
			"Application": "European vehicles",
		},
		Image:     "/catalogue/61oR5yhx3cL._UF894,1000_QL80_.jpg",
		Tags:      []string{"oil-filter", "premium"},
		DateAdded: date(2024, time.February, 5),
		Featured:  false,
	},
	{
		ID:          "wix-51515",
		Name:        "WIX Spin-On Oil Filter 51515",
		Category:    categories[1],
		Subcategory: "Oil Filters",
		Brand:       "WIX",
		Description: "Professional grade spin-on oil filter with heavy-duty construction.",
		Specifications: map[string]string{
			"Thread Size":    "3/4-16",
			"Height":         "4.31 inches",
			"Diameter":       "3.66 inches",
			"Bypass Valve":   "9-11 PSI",
			"Anti-Drainback": "Yes",
		},
		Image:     "/catalogue/71te4m08OHL._UF894,1000_QL80_.jpg",
		Tags:      []string{"oil-filter", "professional"},
		DateAdded: date(2024, time.February, 8),
		Featured:  false,
	},
}

// Products returns a copy of the full product set.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Categories returns all product categories in display order.
func Categories() []*Category {
	out := make([]*Category, len(categories))
	copy(out, categories)
	return out
}

// ProductByID looks up a single product. The second return value
// reports whether the id exists.
func ProductByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
