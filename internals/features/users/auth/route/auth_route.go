package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "markazy_backend/internals/features/users/auth/controller"
	authStore "markazy_backend/internals/features/users/auth/store"
	"markazy_backend/internals/middlewares"
	authMiddleware "markazy_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, tokens authStore.TokenStore) {
	ctrl := authController.NewAuthController(db, tokens)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/verify-token", ctrl.VerifyToken)

	auth.Get("/profile", authMiddleware.AuthMiddleware(tokens), ctrl.Profile)
}
