package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "markazy_backend/internals/helpers"
)

// OnlyRole restricts a route to exactly one role. No hierarchy.
func OnlyRole(required, forbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(helper.LocUserRole).(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		if role != required {
			if forbiddenMessage == "" {
				forbiddenMessage = "Forbidden: you are not authorized to access this resource"
			}
			return helper.JsonError(c, fiber.StatusForbidden, forbiddenMessage)
		}
		return c.Next()
	}
}
