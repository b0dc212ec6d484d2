package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pagelift/internal/service"
)

// GeneratePage turns a prompt (and optional brand id) into landing page HTML.
// Nothing is persisted; the client saves the result as a draft separately.
func GeneratePage(svc service.GeneratorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)

		var in service.GenerateInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		html, err := svc.Generate(c.UserContext(), p.ID, in)
		if err != nil {
			if errors.Is(err, service.ErrPromptRequired) {
				return writeError(c, fiber.StatusBadRequest, "prompt is required")
			}
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "brand not found")
			}
			logHandlerError(c, "generate", err)
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.JSON(fiber.Map{"html": html})
	}
}
