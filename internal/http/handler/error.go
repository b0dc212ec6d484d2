package handler

import (
	"encoding/json"
	"os"

	"github.com/gofiber/fiber/v2"

	"pagelift/internal/auth"
	"pagelift/internal/http/middleware"
)

// requestIDFromCtx extracts the request_id stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// principalFromCtx extracts the authenticated principal stored by the auth
// middleware. Handlers behind APIAuth can rely on ok being true.
func principalFromCtx(c *fiber.Ctx) (auth.Principal, bool) {
	return middleware.Principal(c)
}

// writeError writes a flat JSON error body without leaking internals. The
// request id travels in the X-Request-ID response header, not the body.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// logHandlerError logs an internal error with its request id so operators can
// correlate; the client only ever sees the sanitized writeError body.
func logHandlerError(c *fiber.Ctx, handler string, err error) {
	_ = json.NewEncoder(os.Stderr).Encode(map[string]any{
		"level":      "error",
		"request_id": requestIDFromCtx(c),
		"handler":    handler,
		"error":      err.Error(),
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for errors that escape the route handlers.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		default:
			return writeError(c, status, "internal server error")
		}
	}
}
