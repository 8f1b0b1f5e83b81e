package models

// Category is the storefront category a charm belongs to.
// "All" is the unfiltered pseudo-category: every entry has exactly one real
// category but matches the All filter too.
type Category string

const (
	CategoryAll     Category = "All"
	CategoryClassic Category = "Classic Charms"
	CategoryPremium Category = "Premium Charms"
	CategoryDeluxe  Category = "Deluxe Charms"
	CategoryFlags   Category = "Flags"
	CategoryLetters Category = "A-Z"
	CategoryNumbers Category = "0-9"
)

// Categories returns all categories in display order (All first).
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryClassic,
		CategoryPremium,
		CategoryDeluxe,
		CategoryFlags,
		CategoryLetters,
		CategoryNumbers,
	}
}

// CatalogEntry represents a single priced, categorized charm derived from one
// source image file. Derived once per listing; immutable after derivation.
// Prices are in fils (100 fils = 1 AED).
type CatalogEntry struct {
	ID          string   `json:"id"`
	Filename    string   `json:"filename"`
	ImageURL    string   `json:"imageUrl"`
	Category    Category `json:"category"`
	Price       int64    `json:"price"`
	DisplayName string   `json:"displayName"`
	SoldOut     bool     `json:"soldOut"`
}

// CatalogResponse is the response for the catalog listing endpoint.
type CatalogResponse struct {
	Category Category         `json:"category"`
	Items    []CatalogEntry   `json:"items"`
	Counts   map[Category]int `json:"counts"`
}
