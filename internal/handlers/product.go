package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/reviewhub/internal/store"
)

// ProductHandler serves the catalog and per-product review listings.
type ProductHandler struct {
	store *store.Store
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(st *store.Store) *ProductHandler {
	return &ProductHandler{store: st}
}

// ListProducts returns every catalog product in initialization order.
// Clients do their own presentation sorting.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	return c.JSON(h.store.Products())
}

// ListProductReviews returns one product's reviews in submission order.
func (h *ProductHandler) ListProductReviews(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	return c.JSON(h.store.ProductReviews(id))
}
