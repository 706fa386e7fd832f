package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/reviewhub/internal/config"
	"github.com/example/reviewhub/internal/handlers"
	"github.com/example/reviewhub/internal/models"
	"github.com/example/reviewhub/internal/routes"
	"github.com/example/reviewhub/internal/storage"
	"github.com/example/reviewhub/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AppPort:    "3001",
		BaseURL:    "http://localhost:3001",
		UploadsDir: filepath.Join(t.TempDir(), "uploads"),
	}

	photos, err := storage.New(cfg.UploadsDir)
	require.NoError(t, err)

	st := store.New(store.DefaultCatalog(), photos, cfg.BaseURL)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    models.MaxPhotosPerReview*int(models.MaxPhotoSize) + 1<<20,
	})
	routes.Register(app, st, cfg)
	return app
}

type photoPart struct {
	filename    string
	contentType string
	content     []byte
}

func reviewForm(t *testing.T, fields map[string]string, photos ...photoPart) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	for _, p := range photos {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photos"; filename=%q`, p.filename))
		header.Set("Content-Type", p.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(p.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/reviews", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeJSON(t *testing.T, body io.Reader, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(v))
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var out map[string]string
	decodeJSON(t, resp.Body, &out)
	return out["message"]
}

func TestCreateReview_EndToEnd(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(reviewForm(t, map[string]string{
		"productId": "1",
		"userName":  "Al",
		"rating":    "4",
		"review":    "Works great for daily use",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var review models.Review
	decodeJSON(t, resp.Body, &review)
	assert.Equal(t, 1, review.ProductID)
	assert.Equal(t, "Al", review.UserName)
	assert.Equal(t, 4, review.Rating)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	decodeJSON(t, resp.Body, &products)
	require.Len(t, products, 6)
	assert.Equal(t, 4.0, products[0].AverageRating)
	assert.Equal(t, 1, products[0].ReviewCount)

	// Same user with different case for the same product is rejected.
	resp, err = app.Test(reviewForm(t, map[string]string{
		"productId": "1",
		"userName":  "al",
		"rating":    "5",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "You have already reviewed this product", errorMessage(t, resp))
}

func TestCreateReview_MissingFields(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(reviewForm(t, map[string]string{"userName": "Al", "rating": "4"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Product ID and user name are required", errorMessage(t, resp))
}

func TestCreateReview_MissingContent(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(reviewForm(t, map[string]string{
		"productId": "1",
		"userName":  "Al",
		"rating":    "0",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Either rating or review is required", errorMessage(t, resp))
}

func TestCreateReview_KeepsFirstThreePhotos(t *testing.T) {
	app := newTestApp(t)

	photos := make([]photoPart, 4)
	for i := range photos {
		photos[i] = photoPart{
			filename:    fmt.Sprintf("photo-%d.png", i),
			contentType: "image/png",
			content:     []byte("png bytes"),
		}
	}

	resp, err := app.Test(reviewForm(t, map[string]string{
		"productId": "2",
		"userName":  "Bea",
		"rating":    "5",
	}, photos...))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var review models.Review
	decodeJSON(t, resp.Body, &review)
	assert.Len(t, review.Photos, 3)
	for _, url := range review.Photos {
		assert.Contains(t, url, "/uploads/photos-")
	}
}

func TestCreateReview_RejectsOversizedPhoto(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(reviewForm(t, map[string]string{
		"productId": "1",
		"userName":  "Al",
		"rating":    "4",
	}, photoPart{
		filename:    "huge.png",
		contentType: "image/png",
		content:     bytes.Repeat([]byte("x"), int(models.MaxPhotoSize)+1),
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "File too large. Maximum size is 5MB.", errorMessage(t, resp))
}

func TestCreateReview_RejectsNonImagePhoto(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(reviewForm(t, map[string]string{
		"productId": "1",
		"userName":  "Al",
		"rating":    "4",
	}, photoPart{
		filename:    "notes.txt",
		contentType: "text/plain",
		content:     []byte("not an image"),
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Only image files are allowed.", errorMessage(t, resp))
}

func TestTrendingTags_Endpoint(t *testing.T) {
	app := newTestApp(t)

	submissions := []map[string]string{
		{"productId": "1", "userName": "Al", "rating": "4", "tags": "battery, comfort"},
		{"productId": "2", "userName": "Al", "rating": "5", "tags": "battery"},
	}
	for _, fields := range submissions {
		resp, err := app.Test(reviewForm(t, fields))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/reviews/tags", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tags []models.TagCount
	decodeJSON(t, resp.Body, &tags)
	require.Len(t, tags, 2)
	assert.Equal(t, models.TagCount{Tag: "battery", Count: 2}, tags[0])
	assert.Equal(t, models.TagCount{Tag: "comfort", Count: 1}, tags[1])
}
