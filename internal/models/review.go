package models

import "time"

// Limits applied to review submissions.
const (
	// MaxPhotoSize is the maximum allowed photo size in bytes (5 MB).
	MaxPhotoSize int64 = 5 * 1024 * 1024

	// MaxPhotosPerReview caps photo attachments; extras are dropped.
	MaxPhotosPerReview = 3

	// MinReviewTextLen is the minimum trimmed review text length.
	MinReviewTextLen = 10

	// PopularTagLimit is how many tags a product surfaces.
	PopularTagLimit = 5

	// TrendingTagLimit is how many tags the global ranking returns.
	TrendingTagLimit = 20
)

// Review is a user-submitted rating/text/tag/photo bundle tied to one
// product. Reviews are append-only; there is no edit or delete.
type Review struct {
	ID        int64     `json:"id"`
	ProductID int       `json:"productId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Review    *string   `json:"review"`
	Tags      []string  `json:"tags"`
	Photos    []string  `json:"photos"`
	CreatedAt time.Time `json:"createdAt"`
}

// TagCount pairs a tag with the number of reviews that used it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
