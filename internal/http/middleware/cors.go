package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS permits cross-origin requests from any origin.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodHead,
			fiber.MethodPut,
			fiber.MethodPatch,
			fiber.MethodPost,
			fiber.MethodDelete,
		}, ","),
		ExposeHeaders: RequestIDHeader,
	})
}
