// Package stats derives product statistics from the review sequence.
// Every function is pure: the same input always yields the same output
// and nothing is mutated.
package stats

import (
	"math"
	"sort"

	"github.com/example/reviewhub/internal/models"
)

// ProductStats are the derived Product fields recomputed after every
// accepted review.
type ProductStats struct {
	AverageRating float64
	ReviewCount   int
	PopularTags   []string
}

// ForProduct aggregates the reviews belonging to productID. The average
// is the arithmetic mean of the rating fields (rating-only and text-only
// reviews both count) rounded half away from zero to one decimal, or 0
// when the product has no reviews.
func ForProduct(productID int, reviews []models.Review) ProductStats {
	var (
		total int
		count int
		tags  []string
	)
	for _, r := range reviews {
		if r.ProductID != productID {
			continue
		}
		total += r.Rating
		count++
		tags = append(tags, r.Tags...)
	}

	s := ProductStats{
		ReviewCount: count,
		PopularTags: topTags(tags, models.PopularTagLimit),
	}
	if count > 0 {
		s.AverageRating = round1(float64(total) / float64(count))
	}
	return s
}

// TrendingTags ranks tags across the whole review sequence and returns
// the top entries with their counts.
func TrendingTags(reviews []models.Review) []models.TagCount {
	var tags []string
	for _, r := range reviews {
		tags = append(tags, r.Tags...)
	}

	ranked := rankTags(tags)
	if len(ranked) > models.TrendingTagLimit {
		ranked = ranked[:models.TrendingTagLimit]
	}
	return ranked
}

func topTags(tags []string, limit int) []string {
	ranked := rankTags(tags)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	names := make([]string, len(ranked))
	for i, tc := range ranked {
		names[i] = tc.Tag
	}
	return names
}

// rankTags counts occurrences and sorts descending by count. The sort is
// stable over first-occurrence order, which makes ties deterministic.
func rankTags(tags []string) []models.TagCount {
	counts := make(map[string]int)
	order := make([]string, 0, len(tags))
	for _, tag := range tags {
		if counts[tag] == 0 {
			order = append(order, tag)
		}
		counts[tag]++
	}

	ranked := make([]models.TagCount, 0, len(order))
	for _, tag := range order {
		ranked = append(ranked, models.TagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
