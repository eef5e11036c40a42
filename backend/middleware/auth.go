package middleware

import (
	"github.com/gofiber/fiber/v2"

	"mylegs/backend/config"
	"mylegs/backend/models"
	"mylegs/backend/session"
	"mylegs/backend/utils"
)

const userLocal = "user"

// AuthMiddleware verifies the bearer token and that it belongs to the
// active session. After logout any token check must see "no session".
func AuthMiddleware(cfg *config.Config, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		current, ok := sessions.Current()
		if !ok || current.ID != userID {
			return utils.Unauthorized(c, "Unauthorized")
		}

		c.Locals(userLocal, current)
		return c.Next()
	}
}

// AdminMiddleware restricts a route tree to the admin role.
func AdminMiddleware(cfg *config.Config, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		current, ok := sessions.Current()
		if !ok || current.ID != userID {
			return utils.Unauthorized(c, "Unauthorized")
		}

		if !current.IsAdmin() {
			return utils.Forbidden(c, "Forbidden - Admin access required")
		}

		c.Locals(userLocal, current)
		return c.Next()
	}
}

// CurrentUser returns the identity stored by the auth middleware.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(userLocal).(models.User)
	return user, ok
}
