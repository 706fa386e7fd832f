// Package store owns the process-lifetime product catalog, the
// append-only review sequence and the duplicate-submission guard.
// Everything is lost on restart.
package store

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/example/reviewhub/internal/models"
	"github.com/example/reviewhub/internal/stats"
)

// Submission validation failures. The messages double as the HTTP error
// bodies, so they keep the wording clients already depend on.
var (
	ErrMissingField    = errors.New("Product ID and user name are required")
	ErrInvalidRating   = errors.New("Rating must be a number between 0 and 5")
	ErrMissingContent  = errors.New("Either rating or review is required")
	ErrReviewTooShort  = errors.New("Review must be at least 10 characters")
	ErrUnknownProduct  = errors.New("Unknown product")
	ErrDuplicateReview = errors.New("You have already reviewed this product")
)

var validationErrors = []error{
	ErrMissingField,
	ErrInvalidRating,
	ErrMissingContent,
	ErrReviewTooShort,
	ErrUnknownProduct,
	ErrDuplicateReview,
}

// IsValidation reports whether err is a submission validation failure,
// as opposed to an internal error.
func IsValidation(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// PhotoSaver persists review photo attachments. Save returns the stored
// filename; Remove rolls back a stored file when a submission aborts.
type PhotoSaver interface {
	Save(originalName string, data io.Reader) (string, error)
	Remove(storedName string) error
}

// PhotoUpload is one photo attachment of a submission.
type PhotoUpload struct {
	Name string
	Data io.Reader
}

// SubmitInput carries the raw form fields of a review submission.
// Numeric fields stay strings so the store owns the full validation
// order, not the transport.
type SubmitInput struct {
	ProductID string
	UserName  string
	Rating    string
	Review    string
	Tags      string
	Photos    []PhotoUpload
}

// Store holds all service state. The mutex is held across the whole
// duplicate-check, photo-write, append and stats-recompute sequence, so
// concurrent submissions for the same store cannot interleave and the
// guard set stays in sync with the review sequence.
type Store struct {
	mu       sync.Mutex
	products []models.Product
	reviews  []models.Review
	reviewed map[string]struct{}
	photos   PhotoSaver
	baseURL  string
	lastID   int64
}

// New returns a store over the given catalog. baseURL prefixes the
// public URLs of stored photos.
func New(products []models.Product, photos PhotoSaver, baseURL string) *Store {
	return &Store{
		products: products,
		reviews:  make([]models.Review, 0),
		reviewed: make(map[string]struct{}),
		photos:   photos,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}
}

// Submit validates a candidate review and, on success, stores its
// photos, appends it to the sequence, marks the (user, product) pair as
// reviewed and overwrites the product's derived stats before returning.
// Validation is ordered and the first failure wins. Nothing is mutated
// on any failure path.
func (s *Store) Submit(input SubmitInput) (*models.Review, error) {
	userName := strings.TrimSpace(input.UserName)
	if strings.TrimSpace(input.ProductID) == "" || userName == "" {
		return nil, ErrMissingField
	}

	rating := 0
	if v := strings.TrimSpace(input.Rating); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 || parsed > 5 {
			return nil, ErrInvalidRating
		}
		rating = parsed
	}

	text := strings.TrimSpace(input.Review)
	if rating == 0 && text == "" {
		return nil, ErrMissingContent
	}
	if text != "" && utf8.RuneCountInString(text) < models.MinReviewTextLen {
		return nil, ErrReviewTooShort
	}

	productID, err := strconv.Atoi(strings.TrimSpace(input.ProductID))
	if err != nil {
		return nil, ErrUnknownProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findProduct(productID) == nil {
		return nil, ErrUnknownProduct
	}

	guardKey := strings.ToLower(userName) + "-" + strconv.Itoa(productID)
	if _, ok := s.reviewed[guardKey]; ok {
		return nil, ErrDuplicateReview
	}

	photos, err := s.storePhotos(input.Photos)
	if err != nil {
		return nil, err
	}

	review := models.Review{
		ID:        s.nextID(),
		ProductID: productID,
		UserName:  userName,
		Rating:    rating,
		Tags:      parseTags(input.Tags),
		Photos:    photos,
		CreatedAt: time.Now().UTC(),
	}
	if text != "" {
		review.Review = &text
	}

	s.reviews = append(s.reviews, review)
	s.reviewed[guardKey] = struct{}{}
	s.applyStats(productID, stats.ForProduct(productID, s.reviews))

	return &review, nil
}

// Products returns the catalog in initialization order.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductReviews returns the reviews for one product in submission
// order. Unknown or unreviewed products yield an empty slice.
func (s *Store) ProductReviews(productID int) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Review, 0)
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// TrendingTags ranks tags across every stored review.
func (s *Store) TrendingTags() []models.TagCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	return stats.TrendingTags(s.reviews)
}

// storePhotos writes every attachment or none: a failed write removes
// the files already stored so an aborted submission leaves no trace.
func (s *Store) storePhotos(uploads []PhotoUpload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	stored := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		name, err := s.photos.Save(upload.Name, upload.Data)
		if err != nil {
			for _, n := range stored {
				_ = s.photos.Remove(n)
			}
			return nil, fmt.Errorf("store photo %q: %w", upload.Name, err)
		}
		stored = append(stored, name)
		urls = append(urls, s.baseURL+"/uploads/"+name)
	}
	return urls, nil
}

// nextID returns a millisecond timestamp bumped past the previous id,
// keeping ids unique and monotonic for same-millisecond submissions.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// applyStats overwrites the derived fields of the matching product and
// silently drops stats for an unknown id. Submit validates the id
// before mutating, so the drop branch is unreachable from the
// submission path.
func (s *Store) applyStats(productID int, ps stats.ProductStats) {
	if p := s.findProduct(productID); p != nil {
		p.AverageRating = ps.AverageRating
		p.ReviewCount = ps.ReviewCount
		p.PopularTags = ps.PopularTags
	}
}

func (s *Store) findProduct(id int) *models.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}

// parseTags splits a comma-separated tag list, trimming entries and
// dropping empties while keeping first-appearance order.
func parseTags(raw string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
