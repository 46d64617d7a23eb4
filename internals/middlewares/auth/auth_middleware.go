// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"markazy_backend/internals/configs"
	authService "markazy_backend/internals/features/users/auth/service"
	authStore "markazy_backend/internals/features/users/auth/store"
	helper "markazy_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token, rejects blacklisted
// (logged-out) tokens, and attaches email and role to the request.
func AuthMiddleware(tokens authStore.TokenStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
		}

		listed, err := tokens.IsBlacklisted(raw)
		if err != nil {
			log.Printf("[ERROR] blacklist check: %v", err)
			return helper.JsonServerError(c, "Internal Server Error", err)
		}
		if listed {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token has been invalidated (logged out)")
		}

		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims, err := authService.VerifyToken(configs.JWTSecret, raw)
		if err != nil {
			if errors.Is(err, authService.ErrTokenExpired) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Token expired")
			}
			return helper.JsonError(c, fiber.StatusForbidden, "Invalid token")
		}

		c.Locals(helper.LocRawToken, raw)
		c.Locals(helper.LocUserEmail, claims.Email)
		c.Locals(helper.LocUserRole, claims.Role)
		return c.Next()
	}
}
