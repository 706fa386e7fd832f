package handlers

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/reviewhub/internal/metrics"
	"github.com/example/reviewhub/internal/models"
	"github.com/example/reviewhub/internal/store"
)

// ReviewHandler accepts review submissions and serves tag rankings.
type ReviewHandler struct {
	store *store.Store
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(st *store.Store) *ReviewHandler {
	return &ReviewHandler{store: st}
}

// CreateReview handles POST /api/reviews (multipart form with up to
// three image attachments under "photos"). The boundary checks only
// transport concerns: attachment count, size and content type. Field
// validation belongs to the store.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid multipart form")
	}

	photos := form.File["photos"]
	if len(photos) > models.MaxPhotosPerReview {
		// Extra attachments are dropped, not rejected.
		photos = photos[:models.MaxPhotosPerReview]
	}

	uploads := make([]store.PhotoUpload, 0, len(photos))
	opened := make([]multipart.File, 0, len(photos))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, header := range photos {
		if header.Size > models.MaxPhotoSize {
			metrics.ReviewsSubmitted.WithLabelValues("rejected").Inc()
			return fiber.NewError(fiber.StatusBadRequest, "File too large. Maximum size is 5MB.")
		}
		if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
			metrics.ReviewsSubmitted.WithLabelValues("rejected").Inc()
			return fiber.NewError(fiber.StatusBadRequest, "Only image files are allowed.")
		}

		file, err := header.Open()
		if err != nil {
			metrics.ReviewsSubmitted.WithLabelValues("failed").Inc()
			return err
		}
		opened = append(opened, file)
		uploads = append(uploads, store.PhotoUpload{Name: header.Filename, Data: file})
	}

	review, err := h.store.Submit(store.SubmitInput{
		ProductID: formValue(form, "productId"),
		UserName:  formValue(form, "userName"),
		Rating:    formValue(form, "rating"),
		Review:    formValue(form, "review"),
		Tags:      formValue(form, "tags"),
		Photos:    uploads,
	})
	if err != nil {
		outcome := "failed"
		if store.IsValidation(err) {
			outcome = "rejected"
		}
		metrics.ReviewsSubmitted.WithLabelValues(outcome).Inc()
		return err
	}

	metrics.ReviewsSubmitted.WithLabelValues("accepted").Inc()
	metrics.PhotosStored.Add(float64(len(review.Photos)))

	return c.Status(fiber.StatusCreated).JSON(review)
}

// TrendingTags returns the top tags across every review, with counts.
func (h *ReviewHandler) TrendingTags(c *fiber.Ctx) error {
	return c.JSON(h.store.TrendingTags())
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}
