package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/reviewhub/internal/config"
	"github.com/example/reviewhub/internal/handlers"
	"github.com/example/reviewhub/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, st *store.Store, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(st)
	reviewHandler := handlers.NewReviewHandler(st)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "up", "timestamp": time.Now().UTC()})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Stored photos are served back as static resources.
	app.Static("/uploads", cfg.UploadsDir)

	api := app.Group("/api")
	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/:id/reviews", productHandler.ListProductReviews)
	api.Post("/reviews", reviewHandler.CreateReview)
	api.Get("/reviews/tags", reviewHandler.TrendingTags)
}
