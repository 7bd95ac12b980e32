package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// errorPayload is the JSON body of every error response.
type errorPayload struct {
	Error string `json:"error" example:"Failed to fetch Nobel Prizes"`
}

// writeError writes a fixed, safe message with the given status.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// ErrorHandler returns a Fiber global error handler that maps framework
// errors (unknown route, wrong method, oversized body) to fixed messages.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "request entity too large")
		case fiber.StatusInternalServerError:
			return writeError(c, status, "internal server error")
		default:
			return writeError(c, status, strings.ToLower(utils.StatusMessage(status)))
		}
	}
}
