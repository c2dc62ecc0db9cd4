package middleware

import "github.com/gofiber/fiber/v2"

// ErrorResponse writes the uniform failure envelope.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

// ValidationErrorResponse reports per-field validation failures.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   true,
		"message": "Validation failed!",
		"details": errors,
	})
}
