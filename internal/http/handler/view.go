package handler

import (
	"github.com/gofiber/fiber/v2"

	"pagelift/internal/service"
)

// RecordPageView records a view for a published page. Recording is
// best-effort: failures are logged and the response is always
// {"success": true} so a broken analytics path never breaks the page.
func RecordPageView(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		referrer := optionalHeader(c, fiber.HeaderReferer)
		userAgent := optionalHeader(c, fiber.HeaderUserAgent)

		if err := svc.RecordView(c.UserContext(), c.Params("id"), referrer, userAgent); err != nil {
			logHandlerError(c, "view.record", err)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// optionalHeader returns nil when the header is absent, distinguishing
// "not sent" from "sent empty".
func optionalHeader(c *fiber.Ctx, name string) *string {
	v := c.Get(name)
	if v == "" {
		return nil
	}
	return &v
}
