package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"markazy_backend/internals/features/users/auth/service"
	authStore "markazy_backend/internals/features/users/auth/store"
)

type AuthController struct {
	DB     *gorm.DB
	Tokens authStore.TokenStore
}

func NewAuthController(db *gorm.DB, tokens authStore.TokenStore) *AuthController {
	return &AuthController{DB: db, Tokens: tokens}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.Tokens, c)
}

func (ac *AuthController) VerifyToken(c *fiber.Ctx) error {
	return service.VerifyTokenHandler(ac.Tokens, c)
}

func (ac *AuthController) Profile(c *fiber.Ctx) error {
	return service.Profile(ac.DB, c)
}
