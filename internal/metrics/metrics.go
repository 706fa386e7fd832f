package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReviewsSubmitted counts review submissions by outcome:
	// accepted, rejected (validation) or failed (internal error).
	ReviewsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_submitted_total",
			Help: "Total number of review submissions by outcome",
		},
		[]string{"outcome"},
	)

	// PhotosStored counts photos written to the uploads directory.
	PhotosStored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "review_photos_stored_total",
			Help: "Total number of review photos stored",
		},
	)
)
