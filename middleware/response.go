package middleware

import "github.com/gofiber/fiber/v2"

// ErrorResponse sends the {"error": message} body every failing handler uses.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// ValidationErrorResponse sends a 400 with the per-field violation map.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Validation failed!",
		"details": errors,
	})
}

// MessageResponse sends a 200 confirmation body, used by the delete handlers.
func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": message,
	})
}
