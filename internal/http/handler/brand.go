package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pagelift/internal/service"
)

// ListBrands returns every brand profile owned by the caller, full rows,
// newest first.
func ListBrands(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)
		brands, err := svc.List(c.UserContext(), p.ID)
		if err != nil {
			logHandlerError(c, "brand.list", err)
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.JSON(fiber.Map{"brands": brands})
	}
}

// CreateBrand stores a new brand profile for the caller.
func CreateBrand(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)

		var in service.CreateBrandInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		brand, err := svc.Create(c.UserContext(), p.ID, in)
		if err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "name is required")
			}
			logHandlerError(c, "brand.create", err)
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(brand)
	}
}

// DeleteBrand removes the caller's brand profile.
func DeleteBrand(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)

		if err := svc.Delete(c.UserContext(), p.ID, c.Params("id")); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "brand not found")
			}
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "invalid id")
			}
			logHandlerError(c, "brand.delete", err)
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
