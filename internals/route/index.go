package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "markazy_backend/internals/features/activities/route"
	activityTypeRoute "markazy_backend/internals/features/activitytypes/route"
	centerRoute "markazy_backend/internals/features/centers/route"
	newsRoute "markazy_backend/internals/features/news/route"
	playgroundRoute "markazy_backend/internals/features/playgrounds/route"
	poolRoute "markazy_backend/internals/features/swimmingpools/route"
	techClubRoute "markazy_backend/internals/features/techclubs/route"
	authRoute "markazy_backend/internals/features/users/auth/route"
	authStore "markazy_backend/internals/features/users/auth/store"
	"markazy_backend/internals/helpers/oss"
)

// SetupRoutes mounts every feature under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB, tokens authStore.TokenStore, images oss.ImageStorage) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db, tokens)
	centerRoute.CenterRoutes(api, db, tokens, images)
	activityTypeRoute.ActivityTypeRoutes(api, db, tokens)
	activityRoute.ActivityRoutes(api, db, tokens)
	techClubRoute.TechClubRoutes(api, db, tokens)
	playgroundRoute.PlaygroundRoutes(api, db, tokens)
	poolRoute.SwimmingPoolRoutes(api, db, tokens)
	newsRoute.NewsRoutes(api, db, tokens, images)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})
}
