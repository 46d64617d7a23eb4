// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"markazy_backend/internals/configs"
	authModel "markazy_backend/internals/features/users/auth/model"
	authStore "markazy_backend/internals/features/users/auth/store"
	helper "markazy_backend/internals/helpers"
)

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	var user authModel.UserModel
	if err := db.WithContext(c.UserContext()).Where("user_email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := SignToken(configs.JWTSecret, user.UserEmail, user.UserRole, time.Now())
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonServerError(c, "Failed to issue token", err)
	}

	return helper.JsonOK(c, "Logged in", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"email": user.UserEmail,
			"role":  user.UserRole,
		},
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout — blacklists the presented token for the
// remainder of its lifetime.
func Logout(tokens authStore.TokenStore, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
	}

	// Keep the blacklist entry only as long as the token itself lives.
	expiresAt := time.Now().Add(TokenTTL)
	if claims, err := VerifyToken(configs.JWTSecret, raw); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := tokens.Blacklist(raw, expiresAt); err != nil {
		log.Printf("[ERROR] blacklist token: %v", err)
		return helper.JsonServerError(c, "Failed to log out", err)
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// ========================== VERIFY TOKEN ==========================
// GET /api/auth/verify-token
func VerifyTokenHandler(tokens authStore.TokenStore, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
	}

	listed, err := tokens.IsBlacklisted(raw)
	if err != nil {
		log.Printf("[ERROR] blacklist check: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}
	if listed {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token has been invalidated (logged out)")
	}

	claims, err := VerifyToken(configs.JWTSecret, raw)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token expired")
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid token")
	}

	return helper.JsonOK(c, "Token valid", fiber.Map{
		"email": claims.Email,
		"role":  claims.Role,
	})
}

// ========================== PROFILE ==========================
// GET /api/auth/profile (behind the auth gate)
func Profile(db *gorm.DB, c *fiber.Ctx) error {
	email, _ := c.Locals(helper.LocUserEmail).(string)
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user authModel.UserModel
	if err := db.WithContext(c.UserContext()).Where("user_email = ?", email).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"id":    user.UserID,
		"email": user.UserEmail,
		"role":  user.UserRole,
	})
}
