package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/example/reviewhub/internal/store"
)

// ErrorHandler renders every error as a {"message": ...} body.
// Validation failures keep their message with a 400; anything else is
// logged and hidden behind a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if store.IsValidation(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		msg := fiberErr.Message
		if fiberErr.Code >= fiber.StatusInternalServerError {
			log.Printf("request failed: %v", err)
			msg = "Internal server error"
		}
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": msg})
	}

	log.Printf("request failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
}
