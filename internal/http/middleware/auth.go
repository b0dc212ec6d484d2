package middleware

import (
	"github.com/gofiber/fiber/v2"

	"pagelift/internal/auth"
)

// PrincipalLocalKey is the key used to store the authenticated principal in
// Fiber's context locals.
const PrincipalLocalKey = "principal"

// APIAuth guards JSON API routes. Requests without a valid session cookie are
// rejected with 401 and the body {"error":"Unauthorized"}.
func APIAuth(sessions *auth.Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := sessions.Parse(c.Cookies(auth.SessionCookieName))
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		c.Locals(PrincipalLocalKey, p)
		return c.Next()
	}
}

// PageAuth guards browser-facing routes. Requests without a valid session are
// redirected to the login page instead of getting a JSON error.
func PageAuth(sessions *auth.Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := sessions.Parse(c.Cookies(auth.SessionCookieName))
		if !ok {
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.Locals(PrincipalLocalKey, p)
		return c.Next()
	}
}

// Principal returns the authenticated principal stored by APIAuth or PageAuth.
// The second return is false on routes without auth middleware.
func Principal(c *fiber.Ctx) (auth.Principal, bool) {
	p, ok := c.Locals(PrincipalLocalKey).(auth.Principal)
	return p, ok
}
