package middleware

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// JSONBody rejects requests that declare a JSON content type but carry a
// malformed body. Empty bodies and other content types pass through.
// The size limit itself is enforced by fiber.Config.BodyLimit.
func JSONBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isJSONContentType(c.Get(fiber.HeaderContentType)) {
			return c.Next()
		}
		body := bytes.TrimSpace(c.Body())
		if len(body) > 0 && !json.Valid(body) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		return c.Next()
	}
}

func isJSONContentType(ct string) bool {
	if ct == "" {
		return false
	}
	mt := strings.ToLower(strings.TrimSpace(strings.SplitN(ct, ";", 2)[0]))
	return mt == fiber.MIMEApplicationJSON || strings.HasSuffix(mt, "+json")
}
