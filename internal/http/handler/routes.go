package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"nobelproxy/internal/model"
	"nobelproxy/internal/service"
)

// Fixed client-facing failure messages. Upstream detail never reaches the caller.
const (
	msgPrizesFailed   = "Failed to fetch Nobel Prizes"
	msgLaureateFailed = "Failed to fetch laureate details"
)

// RegisterRoutes attaches the proxy routes under prefix, plus health probes at the root.
func RegisterRoutes(app *fiber.App, prefix string, svc service.NobelService) {
	app.Get("/health", HealthCheck())
	app.Get("/healthz", LivenessProbe())

	api := app.Group(prefix)
	api.Get("/nobelPrizes", ListNobelPrizes(svc))
	api.Get("/laureate/:id", GetLaureate(svc))
}

// HealthCheck reports the process as healthy. The service holds no
// dependencies of its own to probe.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 with an empty body.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListNobelPrizes godoc
// @Summary List Nobel Prizes
// @Description Returns every Nobel Prize from the upstream API, sorted ascending, wrapped under nobelPrizes.
// @Tags nobel
// @Produce json
// @Success 200 {object} model.PrizeList
// @Failure 500 {object} errorPayload
// @Router /api/nobelPrizes [get]
func ListNobelPrizes(svc service.NobelService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		prizes, err := svc.FetchPrizeList(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, msgPrizesFailed)
		}
		return c.JSON(model.PrizeList{NobelPrizes: prizes})
	}
}

// GetLaureate godoc
// @Summary Get laureate details
// @Description Returns the upstream laureate record unmodified, or [] when the upstream has none.
// @Tags nobel
// @Produce json
// @Param id path string true "Numeric laureate ID"
// @Success 200 {object} object
// @Failure 500 {object} errorPayload
// @Router /api/laureate/{id} [get]
func GetLaureate(svc service.NobelService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Params aliases the request buffer; the id outlives the handler in spans and logs.
		id := utils.CopyString(c.Params("id"))

		// Invalid ids are reported as 500 like any other failure.
		laureate, err := svc.FetchLaureateByID(c.UserContext(), id)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, msgLaureateFailed)
		}
		return c.JSON(laureate)
	}
}
