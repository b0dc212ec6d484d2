package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pagelift/internal/service"
)

// ListContent returns the caller's uploaded content, newest first. Each item
// is the API projection: id, filename, mime_type, file_size, content_type and
// created_at only.
func ListContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)
		docs, err := svc.List(c.UserContext(), p.ID)
		if err != nil {
			logHandlerError(c, "content.list", err)
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.JSON(fiber.Map{"documents": docs})
	}
}

// UploadContent accepts a multipart upload (field name: file) and stores it
// for the caller.
func UploadContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Upload(c.UserContext(), p.ID, f, fh.Filename, ct, fh.Size)
		if err != nil {
			logHandlerError(c, "content.upload", err)
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// DeleteContent removes the caller's content item from storage and the DB.
func DeleteContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := principalFromCtx(c)

		if err := svc.Delete(c.UserContext(), p.ID, c.Params("id")); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "content not found")
			}
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "invalid id")
			}
			logHandlerError(c, "content.delete", err)
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
