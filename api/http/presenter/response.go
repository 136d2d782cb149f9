package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// PNG writes an encoded image. Rendered clouds are deterministic per cache
// key, so clients may keep them for a short while.
func PNG(c *fiber.Ctx, data []byte) error {
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=60")
	return c.Status(fiber.StatusOK).Send(data)
}
