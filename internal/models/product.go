package models

// Product is a catalog item. Metadata fields are immutable after catalog
// initialization; AverageRating, ReviewCount and PopularTags are derived
// and overwritten after every accepted review for this product.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	ImageURL      string   `json:"imageUrl"`
	AverageRating float64  `json:"averageRating"`
	ReviewCount   int      `json:"reviewCount"`
	PopularTags   []string `json:"popularTags"`
}
