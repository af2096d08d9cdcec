package handlers

import (
	applog "threadline/internal/log"
	"threadline/internal/session"

	"github.com/gofiber/fiber/v2"
)

// RequireUser gates account pages: anyone without a resolvable session is
// sent to the login form.
func RequireUser(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := sessions.CurrentUser(c.UserContext(), sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireAdmin gates the admin console. Logged-in non-admins are sent back
// to the shop rather than shown an error page.
func RequireAdmin(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := sessions.CurrentUser(c.UserContext(), sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		if !u.IsAdmin {
			applog.Security(c, "access.denied.admin", map[string]any{"user_id": u.ID})
			return c.Redirect("/")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
