package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pagelift/internal/service"
)

// CreatePage stores a new draft page for the caller.
func CreatePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)

		var in service.CreatePageInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		page, err := svc.Create(c.UserContext(), p.ID, in)
		if err != nil {
			if errors.Is(err, service.ErrTitleRequired) {
				return writeError(c, fiber.StatusBadRequest, "title is required")
			}
			logHandlerError(c, "page.create", err)
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(page)
	}
}

// ListPages returns the caller's pages, newest first.
func ListPages(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)
		pages, err := svc.List(c.UserContext(), p.ID)
		if err != nil {
			logHandlerError(c, "page.list", err)
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.JSON(fiber.Map{"pages": pages})
	}
}

// GetPage returns one of the caller's pages by id.
func GetPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)
		page, err := svc.Get(c.UserContext(), p.ID, c.Params("id"))
		if err != nil {
			return pageError(c, "page.get", err)
		}
		return c.JSON(page)
	}
}

// UpdatePage applies partial changes to the caller's page.
func UpdatePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)

		var in service.UpdatePageInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		page, err := svc.Update(c.UserContext(), p.ID, c.Params("id"), in)
		if err != nil {
			return pageError(c, "page.update", err)
		}
		return c.JSON(page)
	}
}

// PublishPage flips the caller's page to published so /p/:slug serves it.
func PublishPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)
		page, err := svc.Publish(c.UserContext(), p.ID, c.Params("id"))
		if err != nil {
			return pageError(c, "page.publish", err)
		}
		return c.JSON(page)
	}
}

// DeletePage removes the caller's page.
func DeletePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)
		if err := svc.Delete(c.UserContext(), p.ID, c.Params("id")); err != nil {
			return pageError(c, "page.delete", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PageStatsHandler returns the view counter and recent views for the caller's
// page.
func PageStatsHandler(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)
		stats, err := svc.Stats(c.UserContext(), p.ID, c.Params("id"))
		if err != nil {
			return pageError(c, "page.stats", err)
		}
		return c.JSON(stats)
	}
}

// ServePublishedPage serves a published page's HTML publicly by slug.
func ServePublishedPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.GetPublished(c.UserContext(), c.Params("slug"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "page not found")
			}
			logHandlerError(c, "page.serve", err)
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.Type("html").SendString(page.HTML)
	}
}

func pageError(c *fiber.Ctx, handler string, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "page not found")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "invalid id")
	default:
		logHandlerError(c, handler, err)
		return writeError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
