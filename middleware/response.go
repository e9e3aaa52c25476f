package middleware

import "github.com/gofiber/fiber/v2"

// JsonResponse writes the standard response envelope. Every endpoint answers
// with an explicit status flag so callers never infer outcome from HTTP alone.
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
