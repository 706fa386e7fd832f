package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/reviewhub/internal/config"
	"github.com/example/reviewhub/internal/handlers"
	"github.com/example/reviewhub/internal/models"
	"github.com/example/reviewhub/internal/routes"
	"github.com/example/reviewhub/internal/storage"
	"github.com/example/reviewhub/internal/store"
)

func main() {
	cfg := config.Load()

	photos, err := storage.New(cfg.UploadsDir)
	if err != nil {
		log.Fatalf("photo storage init failed: %v", err)
	}

	st := store.New(store.DefaultCatalog(), photos, cfg.BaseURL)

	app := fiber.New(fiber.Config{
		AppName:      "Reviewhub Backend",
		ErrorHandler: handlers.ErrorHandler,
		// Room for three full-size photos plus the form fields.
		BodyLimit: models.MaxPhotosPerReview*int(models.MaxPhotoSize) + 1<<20,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.Register(app, st, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
